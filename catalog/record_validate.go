package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	RatingMin = decimal.Zero
	RatingMax = decimal.NewFromInt(5)
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges that parsing alone does not enforce.
// Rendering never calls it.
func (r *Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	if r.Price.IsNegative() {
		return fmt.Errorf("price %s is negative", r.Price.String())
	}
	if r.Rating.LessThan(RatingMin) || r.Rating.GreaterThan(RatingMax) {
		return fmt.Errorf("rating %s is outside %s-%s", r.Rating.String(), RatingMin.String(), RatingMax.String())
	}

	return nil
}
