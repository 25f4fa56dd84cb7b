// Package tracing configures OpenTelemetry tracing for the service.
//
// When tracing is enabled spans are exported over OTLP/HTTP if an endpoint is
// configured and pretty-printed to stdout otherwise. When disabled the global
// no-op provider stays in place, so instrumented code runs unchanged.
package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/study-api/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans created by this module.
const InstrumentationName = "github.com/phrazzld/study-api"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Tracer returns the module's tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// Init installs a global tracer provider built from cfg.
// The returned ShutdownFunc is never nil.
func Init(ctx context.Context, logger *slog.Logger, cfg config.TracingConfig, environment, version string) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	exporter, err := buildExporter(ctx, logger, cfg)
	if err != nil {
		return noopShutdown, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp, err := NewProvider(ctx, logger, cfg, environment, version, exporter)
	if err != nil {
		return noopShutdown, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if logger != nil {
		logger.InfoContext(ctx, "otel tracing initialized",
			"service", serviceName(cfg),
			"endpoint", cfg.OTLPEndpoint,
			"sample_ratio", cfg.SampleRatio)
	}

	return tp.Shutdown, nil
}

// NewProvider builds a tracer provider that batches spans to exporter.
func NewProvider(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.TracingConfig,
	environment, version string,
	exporter sdktrace.SpanExporter,
) (*sdktrace.TracerProvider, error) {
	name := serviceName(cfg)
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(name),
			semconv.ServiceVersionKey.String(strings.TrimSpace(version)),
			attribute.String("deployment.environment", strings.TrimSpace(environment)),
		),
	)
	if err != nil {
		if logger == nil {
			return nil, fmt.Errorf("failed to create trace resource: %w", err)
		}
		logger.WarnContext(ctx, "otel resource init failed (continuing)", "error", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(res),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

func buildExporter(ctx context.Context, logger *slog.Logger, cfg config.TracingConfig) (sdktrace.SpanExporter, error) {
	endpoint := strings.TrimSpace(cfg.OTLPEndpoint)
	if endpoint != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}

	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.WarnContext(ctx, "otel using stdout exporter (no OTLP endpoint configured)")
	}
	return exp, nil
}

func serviceName(cfg config.TracingConfig) string {
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		return name
	}
	return config.DefaultServiceName
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
