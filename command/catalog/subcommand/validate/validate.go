package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.scnd.dev/open/catalog/catalog"
	"go.scnd.dev/open/catalog/command/catalog/app"
	"go.scnd.dev/open/catalog/command/catalog/common"
	"go.scnd.dev/open/catalog/command/catalog/index"
	"go.scnd.dev/open/catalog/package/span"
)

type Command struct {
	Source   string   `help:"YAML table to check instead of the built-in one." short:"s" env:"CATALOG_SOURCE"`
	Category []string `help:"Only check the named categories." short:"c"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

type Issue struct {
	Category *string
	Position *int
	Message  *string
}

func (r *Issue) String() string {
	return fmt.Sprintf("%s #%d (%s): %s", *r.Category, *r.Position, catalog.Identifier(*r.Category, *r.Position), *r.Message)
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

	issues := Check(table)
	for _, issue := range issues {
		_, _ = fmt.Fprintln(app.Output(), issue.String())
	}
	if len(issues) > 0 {
		s.Variable("issues", len(issues))
		return s.Error(fmt.Sprintf("%d of %d rows are invalid", len(issues), table.Size()), nil)
	}

	_, _ = fmt.Fprintf(app.Output(), "%d rows valid\n", table.Size())
	return nil
}

// Check collects one issue per failing row. Unlike rendering it does not
// stop at the first bad row.
func Check(table *catalog.Table) []*Issue {
	issues := make([]*Issue, 0)
	for _, category := range table.Categories() {
		for i, row := range category.Rows {
			position := i + 1
			record, err := catalog.ParseRecord(*category.Key, position, row)
			if err == nil {
				err = record.Validate()
			}
			if err != nil {
				message := Message(err)
				issues = append(issues, &Issue{
					Category: category.Key,
					Position: &position,
					Message:  &message,
				})
			}
		}
	}

	return issues
}

// Message flattens validator field errors into a single line.
func Message(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var lists []string
		for _, err := range validationErrors {
			lists = append(lists, err.Field()+" ("+err.Tag()+")")
		}
		return "validation failed on " + strings.Join(lists, ", ")
	}

	return err.Error()
}
