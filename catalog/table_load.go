package catalog

import (
	"fmt"
	"os"

	"go.scnd.dev/open/catalog/package/span"
	"gopkg.in/yaml.v3"
)

// LoadTable reads a YAML table file. See ParseTable for the layout.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, span.NewError(nil, fmt.Sprintf("failed to read table %s", path), err)
	}

	table, err := ParseTable(data)
	if err != nil {
		return nil, span.NewError(nil, fmt.Sprintf("failed to parse table %s", path), err)
	}

	return table, nil
}

// ParseTable decodes a mapping of category key to a list of rows, where
// each row is a flat list of scalars. Mapping order is kept and every
// scalar is taken as its literal text. A null field (~, null or an empty
// entry) is rejected with its line number rather than rendered as text.
func ParseTable(data []byte) (*Table, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, span.NewError(nil, "invalid yaml", err)
	}

	// * empty document is an empty table
	if document.Kind == 0 || len(document.Content) == 0 {
		return NewTable()
	}

	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, span.NewError(nil, fmt.Sprintf("line %d: table must be a mapping of category to rows", root.Line), nil)
	}

	categories := make([]*Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valueNode := root.Content[i+1]

		category := &Category{
			Key:  &keyNode.Value,
			Rows: make([]Row, 0, len(valueNode.Content)),
		}

		// * null category value means no rows
		if valueNode.Kind == yaml.ScalarNode && valueNode.Tag == "!!null" {
			categories = append(categories, category)
			continue
		}
		if valueNode.Kind != yaml.SequenceNode {
			return nil, span.NewError(nil, fmt.Sprintf("line %d: category %s must be a list of rows", valueNode.Line, keyNode.Value), nil)
		}

		for _, rowNode := range valueNode.Content {
			row, err := parseRow(keyNode.Value, rowNode)
			if err != nil {
				return nil, err
			}
			category.Rows = append(category.Rows, row)
		}

		categories = append(categories, category)
	}

	return NewTable(categories...)
}

func parseRow(category string, node *yaml.Node) (Row, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, span.NewError(nil, fmt.Sprintf("line %d: row of %s must be a list", node.Line, category), nil)
	}

	row := make(Row, 0, len(node.Content))
	for _, field := range node.Content {
		if field.Kind != yaml.ScalarNode {
			return nil, span.NewError(nil, fmt.Sprintf("line %d: field of %s must be a scalar", field.Line, category), nil)
		}
		if field.Tag == "!!null" {
			return nil, span.NewError(nil, fmt.Sprintf("line %d: field %d of %s is null", field.Line, len(row)+1, category), nil)
		}
		row = append(row, field.Value)
	}

	return row, nil
}

// DefaultTable is the built-in vodka table.
func DefaultTable() (*Table, error) {
	return ParseTable(TableVodka)
}
