package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/catalog/package/span"
	"go.scnd.dev/open/catalog/utility/form"
)

const (
	DefaultImageUrl     = "https://images.unsplash.com/photo-1613217784112-e0e63b494636?w=600"
	DefaultMonthsBack   = 12
	DefaultHelperAnchor = "2025-12-30"
	ConstantSuffix      = "_PRODUCTS"
)

type Options struct {
	ImageUrl     *string
	MonthsBack   *int
	Helpers      *bool
	HelperAnchor *string
}

type Renderer struct {
	Options *Options
}

// NewRenderer fills unset options with their defaults. A nil options is allowed.
func NewRenderer(options *Options) *Renderer {
	resolved := &Options{
		ImageUrl:     gut.Ptr(DefaultImageUrl),
		MonthsBack:   gut.Ptr(DefaultMonthsBack),
		Helpers:      gut.Ptr(false),
		HelperAnchor: gut.Ptr(DefaultHelperAnchor),
	}
	if options != nil {
		if options.ImageUrl != nil {
			resolved.ImageUrl = options.ImageUrl
		}
		if options.MonthsBack != nil {
			resolved.MonthsBack = options.MonthsBack
		}
		if options.Helpers != nil {
			resolved.Helpers = options.Helpers
		}
		if options.HelperAnchor != nil {
			resolved.HelperAnchor = options.HelperAnchor
		}
	}

	return &Renderer{
		Options: resolved,
	}
}

// Render builds the whole output in memory. Any malformed row fails the
// call and no text is returned.
func (r *Renderer) Render(ctx context.Context, table *Table) (string, error) {
	s, _ := span.With(ctx, "renderer")
	defer s.End()
	s.Variable("categories", len(table.Categories()))
	s.Variable("rows", table.Size())

	if *r.Options.MonthsBack < 0 {
		return "", s.Error(fmt.Sprintf("months back must not be negative, got %d", *r.Options.MonthsBack), nil)
	}

	blocks := make([]string, 0, len(table.Categories())+1)

	// * helper definitions go first so the literals below resolve
	if *r.Options.Helpers {
		if _, err := time.Parse(time.DateOnly, *r.Options.HelperAnchor); err != nil {
			return "", s.Error("invalid helper anchor date", err)
		}
		blocks = append(blocks, FormatHelpers(*r.Options.HelperAnchor))
	}

	for _, category := range table.Categories() {
		block, err := r.RenderCategory(category)
		if err != nil {
			return "", s.Error(fmt.Sprintf("failed to render category %s", *category.Key), err)
		}
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		return "", nil
	}

	return strings.Join(blocks, "\n\n") + "\n", nil
}

// RenderCategory renders a single array declaration for the category.
func (r *Renderer) RenderCategory(category *Category) (string, error) {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("export const %s%s: Product[] = [\n", form.ToConstantCase(*category.Key), ConstantSuffix))

	for i, row := range category.Rows {
		position := i + 1
		record, err := ParseRecord(*category.Key, position, row)
		if err != nil {
			return "", err
		}

		product := NewProduct(*category.Key, position, record, r.Options)
		builder.WriteString(indent(FormatProduct(product), "  "))
		builder.WriteString("\n")
	}

	builder.WriteString("]")
	return builder.String(), nil
}

// Output renders the table and writes it with a single call, so a
// failed render leaves w untouched.
func (r *Renderer) Output(ctx context.Context, w io.Writer, table *Table) error {
	output, err := r.Render(ctx, table)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, output); err != nil {
		return span.NewError(nil, "failed to write output", err)
	}

	return nil
}
