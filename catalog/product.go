package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.scnd.dev/open/catalog/utility/form"
)

const (
	IdentifierPrefixLength = 2
	StockQuantityBase      = 45
	StockQuantityStep      = 5
)

// Product is the derived, render-ready form of a Record.
type Product struct {
	Id            string
	Name          string
	Slug          string
	Brand         string
	Price         decimal.Decimal
	Rating        decimal.Decimal
	Image         string
	Images        []string
	InStock       bool
	StockQuantity int
	Category      string
	Description   string
	TastingNotes  string
	Abv           int
	Volume        string
	Region        string
	Country       string
	Position      int
	Tags          []string
	ReviewCount   int
	MonthsBack    int
}

func NewProduct(category string, position int, record *Record, options *Options) *Product {
	return &Product{
		Id:            Identifier(category, position),
		Name:          *record.Name,
		Slug:          form.ToSlug(*record.Name),
		Brand:         *record.Brand,
		Price:         *record.Price,
		Rating:        *record.Rating,
		Image:         *options.ImageUrl,
		Images:        []string{*options.ImageUrl},
		InStock:       true,
		StockQuantity: StockQuantity(position),
		Category:      form.ToCapitalized(category),
		Description:   *record.Description,
		TastingNotes:  *record.TastingNotes,
		Abv:           *record.Abv,
		Volume:        *record.Volume,
		Region:        *record.Region,
		Country:       *record.Country,
		Position:      position,
		Tags:          SplitTags(*record.Tags),
		ReviewCount:   *record.ReviewCount,
		MonthsBack:    *options.MonthsBack,
	}
}

// Identifier joins the lower-cased category prefix and the zero-padded position, e.g. vo-001.
func Identifier(category string, position int) string {
	return fmt.Sprintf("%s-%03d", form.ToLowerPrefix(category, IdentifierPrefixLength), position)
}

func StockQuantity(position int) int {
	return StockQuantityBase + position*StockQuantityStep
}

// SplitTags splits on commas only. Empty tokens, such as the one a
// trailing comma produces, are kept.
func SplitTags(tags string) []string {
	return strings.Split(tags, ",")
}
