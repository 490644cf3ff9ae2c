// Package trace wires OpenTelemetry spans around console operations.
//
// Spans are exported over OTLP/HTTP when an endpoint is configured
// (telemetry.endpoint or OTEL_EXPORTER_OTLP_ENDPOINT). Without one the
// provider hands out no-op spans and nothing leaves the process.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"leadconsole/internal/config"
)

const (
	instrumentationName = "leadconsole"
	attrPrefix          = "leadconsole."
)

// Provider owns the tracer used by the console.
type Provider struct {
	sdk    *sdktrace.TracerProvider // nil when export is disabled
	tracer oteltrace.Tracer
}

// NewProvider creates an OTLP-exporting provider if cfg.Endpoint is set,
// otherwise a no-op provider.
func NewProvider(ctx context.Context, cfg config.TelemetryConfig) (*Provider, error) {
	if cfg.Endpoint == "" {
		return Noop(), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return newSDKProvider(sdktrace.WithBatcher(exporter), cfg.ServiceName), nil
}

// NewProviderWithExporter exports every span synchronously to exp.
func NewProviderWithExporter(exp sdktrace.SpanExporter, serviceName string) *Provider {
	return newSDKProvider(sdktrace.WithSyncer(exp), serviceName)
}

// Noop returns a provider whose spans record nothing.
func Noop() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

func newSDKProvider(processor sdktrace.TracerProviderOption, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "leadconsole"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	tp := sdktrace.NewTracerProvider(processor, sdktrace.WithResource(res))
	return &Provider{sdk: tp, tracer: tp.Tracer(instrumentationName)}
}

// Enabled reports whether spans leave the process.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Start opens a span. Attributes are namespaced under leadconsole.*.
func (p *Provider) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	if p == nil {
		p = Noop()
	}
	return p.tracer.Start(ctx, name, oteltrace.WithAttributes(namespaced(attrs)...))
}

// SetAttributes adds leadconsole.* attributes to an open span.
func SetAttributes(span oteltrace.Span, attrs ...attribute.KeyValue) {
	span.SetAttributes(namespaced(attrs)...)
}

// End records err on span, if any, and ends it.
func End(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

func namespaced(attrs []attribute.KeyValue) []attribute.KeyValue {
	out := make([]attribute.KeyValue, len(attrs))
	for i, kv := range attrs {
		out[i] = attribute.KeyValue{Key: attribute.Key(attrPrefix + string(kv.Key)), Value: kv.Value}
	}
	return out
}
