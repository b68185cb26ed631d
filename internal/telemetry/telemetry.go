// Package telemetry wires the zorn CLI's OpenTelemetry tracer and meter:
// a stdout span exporter, counters for the core operations it invokes,
// and a go-logr/stdr binding for OTel's own internal diagnostic logger.
// The cryptographic core has no suspension points of its own, but a span
// still usefully records each operation's duration and error status at
// the CLI boundary.
package telemetry

import (
	"context"
	"io"
	"log"

	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/vkleen/zorn/pkg/version"
)

const instrumentationName = "github.com/vkleen/zorn"

// Provider bundles the tracer and meter the CLI commands use to
// instrument their calls into the core, plus a Shutdown that flushes the
// stdout span exporter on process exit.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider

	Tracer trace.Tracer
	Meter  metric.Meter

	IdentitiesGenerated metric.Int64Counter
	ExchangesPerformed  metric.Int64Counter
	AEADOperations      metric.Int64Counter
	AuthFailures        metric.Int64Counter
}

// New constructs a Provider that writes spans to w as newline-delimited
// JSON, and binds OTel's internal logger to a go-logr/stdr logger writing
// to the same destination. The counters are recorded by a meter provider
// with no reader or exporter attached, so metric values are not written
// to w or anywhere else.
func New(w io.Writer) (*Provider, error) {
	otel.SetLogger(stdr.New(log.New(w, "otel: ", log.LstdFlags)))

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("zorn"),
		semconv.ServiceVersion(version.String()),
	)

	spanExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	tracer := tracerProvider.Tracer(instrumentationName)
	meter := meterProvider.Meter(instrumentationName)

	identitiesGenerated, err := meter.Int64Counter("zorn.identities.generated",
		metric.WithDescription("number of identities generated"))
	if err != nil {
		return nil, err
	}
	exchangesPerformed, err := meter.Int64Counter("zorn.exchanges.performed",
		metric.WithDescription("number of key exchanges performed, sender or recipient side"))
	if err != nil {
		return nil, err
	}
	aeadOperations, err := meter.Int64Counter("zorn.aead.operations",
		metric.WithDescription("number of AEAD encrypt/decrypt operations"))
	if err != nil {
		return nil, err
	}
	authFailures, err := meter.Int64Counter("zorn.aead.auth_failures",
		metric.WithDescription("number of AEAD decryption authentication failures"))
	if err != nil {
		return nil, err
	}

	return &Provider{
		tracerProvider:      tracerProvider,
		meterProvider:       meterProvider,
		Tracer:              tracer,
		Meter:               meter,
		IdentitiesGenerated: identitiesGenerated,
		ExchangesPerformed:  exchangesPerformed,
		AEADOperations:      aeadOperations,
		AuthFailures:        authFailures,
	}, nil
}

// Shutdown flushes and stops the tracer and meter providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.tracerProvider.Shutdown(ctx); err != nil {
		return err
	}
	return p.meterProvider.Shutdown(ctx)
}

// StartSpan starts a span named after a core operation and returns an
// ender that records the error status.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, func(error)) {
	ctx, span := p.Tracer.Start(ctx, name)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
