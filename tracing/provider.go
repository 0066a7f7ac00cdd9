package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider returns a tracer provider exporting spans over OTLP/HTTP to
// endpoint. The returned function flushes and stops the provider.
func NewProvider(endpoint, name string) (*trace.TracerProvider, func(), error) {
	ctx := context.Background()
	exp, err := newExporter(ctx, endpoint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating trace exporter")
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(newResource(name)),
	)

	shutdown := func() {
		tp.Shutdown(ctx)
	}

	return tp, shutdown, nil
}

// Install registers the provider and the trace context propagator globally.
// An empty endpoint leaves the global no-op provider in place.
func Install(endpoint, name string) (func(), error) {
	if endpoint == "" {
		return func() {}, nil
	}

	tp, shutdown, err := NewProvider(endpoint, name)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return shutdown, nil
}
