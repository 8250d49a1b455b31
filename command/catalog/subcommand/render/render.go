package render

import (
	"context"

	"go.scnd.dev/open/catalog/catalog"
	"go.scnd.dev/open/catalog/command/catalog/app"
	"go.scnd.dev/open/catalog/command/catalog/common"
	"go.scnd.dev/open/catalog/command/catalog/index"
	"go.scnd.dev/open/catalog/package/span"
)

type Command struct {
	Source     string   `help:"YAML table to render instead of the built-in one." short:"s" env:"CATALOG_SOURCE"`
	Category   []string `help:"Only render the named categories." short:"c"`
	MonthsBack int      `help:"Months passed to randomPastDate." name:"months-back" default:"12"`
	Image      string   `help:"Placeholder image URL." default:"https://images.unsplash.com/photo-1613217784112-e0e63b494636?w=600"`
	Helpers    bool     `help:"Prefix the output with generateSKU and randomPastDate definitions."`
	Anchor     string   `help:"Reference date used by the emitted randomPastDate." default:"2025-12-30"`
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

	s, ctx := span.With(context.Background(), "command")
	defer s.End()
	s.Variable("source", command.Source)

	// * load table
	table, err := common.Table(app, command.Source, command.Category)
	if err != nil {
		return s.Error("invalid table", err)
	}

	// * render whole table before touching stdout
	renderer := catalog.NewRenderer(&catalog.Options{
		ImageUrl:     &command.Image,
		MonthsBack:   &command.MonthsBack,
		Helpers:      &command.Helpers,
		HelperAnchor: &command.Anchor,
	})
	if err := renderer.Output(ctx, app.Output(), table); err != nil {
		return s.Error("unable to render table", err)
	}

	app.Logger().Printf("rendered %d products", table.Size())
	return nil
}
