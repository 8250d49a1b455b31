package main

import (
	"os"

	"github.com/alecthomas/kong"
	"go.scnd.dev/open/catalog/command/catalog/app"
	"go.scnd.dev/open/catalog/command/catalog/subcommand/render"
	"go.scnd.dev/open/catalog/command/catalog/subcommand/tree"
	"go.scnd.dev/open/catalog/command/catalog/subcommand/validate"
)

type Command struct {
	Verbose  bool             `help:"Enable verbose output." short:"v"`
	Render   render.Command   `cmd:"render" default:"withargs" help:"Render the table as TypeScript product arrays."`
	Tree     tree.Command     `cmd:"tree" help:"Print the category and product hierarchy."`
	Validate validate.Command `cmd:"validate" help:"Check every row for malformed or out of range values."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("catalog"),
		kong.Description("Catalog Product Literal Generator"),
		kong.UsageOnError(),
	)
	err := ctx.Run(app.New(command.Verbose, os.Stdout, os.Stderr))
	ctx.FatalIfErrorf(err)
}
