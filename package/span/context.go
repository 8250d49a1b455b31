package span

import (
	"context"
)

type contextKey string

const ContextKeySpan contextKey = "span"

func FromContext(ctx context.Context) *Span {
	span, _ := ctx.Value(ContextKeySpan).(*Span)
	return span
}
