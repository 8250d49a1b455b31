package tree

import (
	"context"
	"fmt"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/catalog/catalog"
	"go.scnd.dev/open/catalog/command/catalog/app"
	"go.scnd.dev/open/catalog/command/catalog/common"
	"go.scnd.dev/open/catalog/command/catalog/index"
	"go.scnd.dev/open/catalog/package/span"
)

type Command struct {
	Source   string   `help:"YAML table to print instead of the built-in one." short:"s" env:"CATALOG_SOURCE"`
	Category []string `help:"Only print the named categories." short:"c"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	shutdown, err := common.Telemetry(app)
	if err != nil {
		return err
	}
	defer shutdown()

	s, _ := span.With(context.Background(), "command")
	defer s.End()

	table, err := common.Table(app, command.Source, command.Category)
	if err != nil {
		return s.Error("invalid table", err)
	}

	if err := gtree.OutputFromRoot(app.Output(), Build(table)); err != nil {
		return s.Error("unable to print tree", err)
	}

	return nil
}

// Build lays the table out as category nodes holding one node per row.
func Build(table *catalog.Table) *gtree.Node {
	root := gtree.NewRoot("catalog")
	for _, category := range table.Categories() {
		node := root.Add(fmt.Sprintf("%s (%d)", *category.Key, len(category.Rows)))
		for i, row := range category.Rows {
			node.Add(Label(*category.Key, i+1, row))
		}
	}

	return root
}

func Label(category string, position int, row catalog.Row) string {
	id := catalog.Identifier(category, position)
	if len(row) != catalog.RecordArity {
		return fmt.Sprintf("%s <malformed: %d fields>", id, len(row))
	}
	return fmt.Sprintf("%s %s", id, row[catalog.FieldName])
}
