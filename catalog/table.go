package catalog

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/catalog/package/span"
	"go.scnd.dev/open/catalog/utility/form"
)

type Category struct {
	Key  *string
	Rows []Row
}

// Table is an ordered, read-only set of categories. Category order and
// row order both decide the emitted output.
type Table struct {
	categories []*Category
}

// NewTable copies the given categories so later changes by the caller
// cannot leak into the table.
func NewTable(categories ...*Category) (*Table, error) {
	table := &Table{
		categories: make([]*Category, 0, len(categories)),
	}

	// * keys are compared in constant case since that is how they render
	seen := make(map[string]string)
	for _, category := range categories {
		if category == nil || category.Key == nil || *category.Key == "" {
			return nil, span.NewError(nil, "category key is required", nil)
		}
		constant := form.ToConstantCase(*category.Key)
		if previous, ok := seen[constant]; ok {
			return nil, span.NewError(nil, fmt.Sprintf("duplicate category %q collides with %q", *category.Key, previous), nil)
		}
		seen[constant] = *category.Key

		key := *category.Key
		rows := make([]Row, len(category.Rows))
		for i, row := range category.Rows {
			rows[i] = append(Row(nil), row...)
		}

		table.categories = append(table.categories, &Category{
			Key:  &key,
			Rows: rows,
		})
	}

	return table, nil
}

// Categories returns the categories in table order. The returned
// categories must not be modified.
func (r *Table) Categories() []*Category {
	return r.categories
}

func (r *Table) Category(key string) *Category {
	for _, category := range r.categories {
		if strings.EqualFold(*category.Key, key) {
			return category
		}
	}
	return nil
}

// Filter keeps only the named categories, in table order. No keys keeps everything.
func (r *Table) Filter(keys ...string) (*Table, error) {
	if len(keys) == 0 {
		return r, nil
	}

	wanted := make(map[*Category]bool)
	for _, key := range keys {
		category := r.Category(key)
		if category == nil {
			return nil, span.NewError(nil, fmt.Sprintf("unknown category %q", key), nil)
		}
		wanted[category] = true
	}

	filtered := &Table{
		categories: make([]*Category, 0, len(wanted)),
	}
	for _, category := range r.categories {
		if wanted[category] {
			filtered.categories = append(filtered.categories, category)
		}
	}

	return filtered, nil
}

func (r *Table) Size() int {
	size := 0
	for _, category := range r.categories {
		size += len(category.Rows)
	}
	return size
}
