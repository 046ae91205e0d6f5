package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
)

// Tracer provides a simplified API for distributed tracing with OpenTelemetry.
// It wraps the TracerProvider and offers helpers for creating spans, recording
// errors and propagating trace context across service boundaries.
//
// The Tracer is safe for concurrent use.
type Tracer struct {
	tracer     *trace.TracerProvider
	propagator propagation.TextMapPropagator
	logger     logger.Logger
}

// NewClient creates a Tracer and installs it as the global OpenTelemetry
// TracerProvider and propagator.
//
// If export is enabled an OTLP HTTP exporter is attached with a batching span
// processor. A failure to build the exporter is logged and the tracer falls
// back to in-process spans only.
//
// Example:
//
//	t := tracer.NewClient(tracer.Config{
//	    ServiceName:  "infra-showcase",
//	    AppEnv:       "development",
//	    EnableExport: false,
//	}, log)
//
//	ctx, span := t.StartSpan(ctx, "search")
//	defer span.End()
func NewClient(cfg Config, log logger.Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
		}

		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			log.Error("cannot initiate trace exporter, spans stay local", err, nil)
		} else {
			options = append(options, trace.WithBatcher(exporter))
		}
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagator)

	return &Tracer{tracer: tp, propagator: propagator, logger: log}
}

// Shutdown flushes pending spans and releases the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.tracer == nil {
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
