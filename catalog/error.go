package catalog

import (
	"fmt"
)

// MalformedRecordError reports a row that cannot become a Record. It is
// never recovered: the render that meets it produces no output at all.
type MalformedRecordError struct {
	Category *string
	Position *int
	Arity    *int
	Field    *string
	Value    *string
	Err      error
}

func (r *MalformedRecordError) Error() string {
	if r.Field == nil {
		return fmt.Sprintf("malformed record %s #%d: expected %d fields, got %d", *r.Category, *r.Position, RecordArity, *r.Arity)
	}
	return fmt.Sprintf("malformed record %s #%d: field %s has invalid value %q", *r.Category, *r.Position, *r.Field, *r.Value)
}

func (r *MalformedRecordError) Unwrap() error {
	return r.Err
}
