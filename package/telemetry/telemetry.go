package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.scnd.dev/open/catalog/package/span"
)

const ServiceName = "catalog"

type Telemetry struct {
	Provider *sdktrace.TracerProvider
}

// New installs a global tracer provider exporting every ended span to w.
func New(w io.Writer) (*Telemetry, error) {
	// * construct resource
	attributes := []attribute.KeyValue{
		semconv.ServiceName(ServiceName),
	}
	res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize resource", err)
	}

	// * construct exporter
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize exporter", err)
	}

	// * construct provider, synchronous so nothing is lost on exit
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)

	return &Telemetry{
		Provider: provider,
	}, nil
}

func (r *Telemetry) Shutdown(ctx context.Context) error {
	if err := r.Provider.Shutdown(ctx); err != nil {
		return span.NewError(nil, "unable to shutdown tracer provider", err)
	}
	return nil
}
