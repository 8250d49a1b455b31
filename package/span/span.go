package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "go.scnd.dev/open/catalog"

type Span struct {
	Name      *string        `json:"name,omitempty"`
	Path      []*string      `json:"path,omitempty"`
	Layer     *string        `json:"layer,omitempty"`
	Caller    *Caller        `json:"caller,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
	Started   *time.Time     `json:"started,omitempty"`
	Ended     *time.Time     `json:"ended,omitempty"`
	Children  []*Span        `json:"children,omitempty"`
	TraceSpan trace.Span     `json:"-"`
}

// With opens a span named after the calling function, nested under the span carried by ctx.
func With(ctx context.Context, layer string) (*Span, context.Context) {
	caller := NewCaller(1)
	name := caller.String()
	now := time.Now()

	ctx, tracingSpan := otel.Tracer(TracerName).Start(ctx, name)
	tracingSpan.SetAttributes(attribute.String("span.layer", layer))

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     &layer,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}

	if parent := FromContext(ctx); parent != nil {
		s.Path = append(append(s.Path, parent.Path...), parent.Name)
		parent.Children = append(parent.Children, s)
	}

	return s, context.WithValue(ctx, ContextKeySpan, s)
}

func (r *Span) Variable(key string, value any) {
	r.Variables[key] = value
	if r.TraceSpan != nil {
		r.TraceSpan.SetAttributes(attribute.String(key, fmt.Sprint(value)))
	}
}

func (r *Span) Error(message string, err error) error {
	if r.TraceSpan != nil {
		if err != nil {
			r.TraceSpan.RecordError(err)
		}
		r.TraceSpan.SetStatus(codes.Error, message)
	}
	return newError(r, message, err, 2)
}

func (r *Span) End() {
	end := time.Now()
	r.Ended = &end
	if r.TraceSpan != nil {
		r.TraceSpan.End()
	}
}
