package common

import (
	"go.scnd.dev/open/catalog/catalog"
	"go.scnd.dev/open/catalog/command/catalog/index"
	"go.scnd.dev/open/catalog/package/span"
)

// Table loads the table at source, or the built-in one when source is
// empty, and narrows it to the given categories.
func Table(app index.App, source string, categories []string) (*catalog.Table, error) {
	var table *catalog.Table
	var err error
	if source == "" {
		app.Logger().Printf("using built-in table")
		table, err = catalog.DefaultTable()
	} else {
		app.Logger().Printf("loading table %s", source)
		table, err = catalog.LoadTable(source)
	}
	if err != nil {
		return nil, span.NewError(nil, "unable to load table", err)
	}

	table, err = table.Filter(categories...)
	if err != nil {
		return nil, span.NewError(nil, "unable to select categories", err)
	}

	app.Logger().Printf("loaded %d categories with %d rows", len(table.Categories()), table.Size())
	return table, nil
}
