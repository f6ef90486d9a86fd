// Package telemetry sets up OpenTelemetry tracing. Spans are exported over
// OTLP/HTTP when an endpoint is configured, otherwise they are discarded.
package telemetry

import (
	"context"
	"strings"

	// Packages
	models "github.com/mutablelogic/go-models"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	otlptracehttp "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	propagation "go.opentelemetry.io/otel/propagation"
	resource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Provider struct {
	trace.TracerProvider
	name     string
	shutdown func(context.Context) error
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a tracer provider for the named service. With an empty
// endpoint the provider is a no-op. Otherwise it is registered as the
// global provider and spans are batched to the OTLP/HTTP endpoint.
func New(ctx context.Context, name, endpoint, version string) (*Provider, error) {
	if name = strings.TrimSpace(name); name == "" {
		return nil, models.ErrBadParameter.With("service name is required")
	}

	// Discard spans when there is nowhere to send them
	if endpoint = strings.TrimSpace(endpoint); endpoint == "" {
		return &Provider{
			TracerProvider: noop.NewTracerProvider(),
			name:           name,
			shutdown:       func(context.Context) error { return nil },
		}, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", name),
			attribute.String("service.version", version),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return &Provider{
		TracerProvider: tp,
		name:           name,
		shutdown:       tp.Shutdown,
	}, nil
}

// Close flushes any pending spans
func (p *Provider) Close(ctx context.Context) error {
	return p.shutdown(ctx)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tracer returns the tracer for the service
func (p *Provider) Tracer() trace.Tracer {
	return p.TracerProvider.Tracer(p.name)
}
