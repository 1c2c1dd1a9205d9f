package observability

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// TracingConfig configures OTLP trace export.
type TracingConfig struct {
	Endpoint       string
	Headers        string // k=v,k2=v2
	ServiceName    string
	ServiceVersion string
}

// Enabled reports whether an endpoint is configured.
func (c TracingConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Telemetry owns the tracer provider.
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
}

// Shutdown flushes pending spans. Safe on a nil Telemetry.
func (t *Telemetry) Shutdown(ctx context.Context) (err error) {
	if t == nil || t.tracerProvider == nil {
		return nil
	}
	err = t.tracerProvider.Shutdown(ctx)
	if err != nil {
		err = errors.Wrap(err, "tracer shutdown")
		return err
	}
	return err
}

// SetupTracing installs a global tracer provider exporting over OTLP/HTTP.
// It returns nil when tracing is disabled.
func SetupTracing(ctx context.Context, cfg TracingConfig) (t *Telemetry, err error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimRight(cfg.Endpoint, "/")+"/v1/traces"),
		otlptracehttp.WithHeaders(ParseHeaders(cfg.Headers)),
	)
	if err != nil {
		err = errors.Wrap(err, "creating trace exporter")
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t = &Telemetry{tracerProvider: tp}
	return t, err
}

// newResource describes this service. The attributes carry no schema URL so
// they merge with whatever schema the SDK detectors report.
func newResource(ctx context.Context, cfg TracingConfig) (res *resource.Resource, err error) {
	res, err = resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		err = errors.Wrap(err, "creating resource")
		return nil, err
	}
	return res, err
}

// ParseHeaders parses "k=v,k2=v2". Malformed pairs are skipped.
func ParseHeaders(s string) map[string]string {
	headers := make(map[string]string)
	if s == "" {
		return headers
	}
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			headers[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return headers
}
