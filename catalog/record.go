package catalog

import (
	"strconv"

	"github.com/bsthun/gut"
	"github.com/shopspring/decimal"
)

const RecordArity = 12

// Row is one positional product tuple as it appears in the source table.
type Row []string

const (
	FieldName = iota
	FieldBrand
	FieldPrice
	FieldRating
	FieldDescription
	FieldTastingNotes
	FieldAbv
	FieldVolume
	FieldRegion
	FieldCountry
	FieldReviewCount
	FieldTags
)

var FieldNames = [RecordArity]string{
	"name",
	"brand",
	"price",
	"rating",
	"description",
	"tastingNotes",
	"abv",
	"volume",
	"region",
	"country",
	"reviewCount",
	"tags",
}

type Record struct {
	Name         *string `validate:"required,min=1"`
	Brand        *string `validate:"required,min=1"`
	Price        *decimal.Decimal
	Rating       *decimal.Decimal
	Description  *string `validate:"required,min=1"`
	TastingNotes *string `validate:"required,min=1"`
	Abv          *int    `validate:"required,gte=0,lte=100"`
	Volume       *string `validate:"required,min=1"`
	Region       *string `validate:"required,min=1"`
	Country      *string `validate:"required,min=1"`
	ReviewCount  *int    `validate:"required,gte=0"`
	Tags         *string
}

// ParseRecord types a row of the given category at its 1-based position.
func ParseRecord(category string, position int, row Row) (*Record, error) {
	if len(row) != RecordArity {
		return nil, &MalformedRecordError{
			Category: &category,
			Position: &position,
			Arity:    gut.Ptr(len(row)),
		}
	}

	malformed := func(field int, err error) error {
		return &MalformedRecordError{
			Category: &category,
			Position: &position,
			Arity:    gut.Ptr(len(row)),
			Field:    &FieldNames[field],
			Value:    &row[field],
			Err:      err,
		}
	}

	price, err := decimal.NewFromString(row[FieldPrice])
	if err != nil {
		return nil, malformed(FieldPrice, err)
	}
	rating, err := decimal.NewFromString(row[FieldRating])
	if err != nil {
		return nil, malformed(FieldRating, err)
	}
	abv, err := strconv.Atoi(row[FieldAbv])
	if err != nil {
		return nil, malformed(FieldAbv, err)
	}
	reviewCount, err := strconv.Atoi(row[FieldReviewCount])
	if err != nil {
		return nil, malformed(FieldReviewCount, err)
	}

	return &Record{
		Name:         &row[FieldName],
		Brand:        &row[FieldBrand],
		Price:        &price,
		Rating:       &rating,
		Description:  &row[FieldDescription],
		TastingNotes: &row[FieldTastingNotes],
		Abv:          &abv,
		Volume:       &row[FieldVolume],
		Region:       &row[FieldRegion],
		Country:      &row[FieldCountry],
		ReviewCount:  &reviewCount,
		Tags:         &row[FieldTags],
	}, nil
}
