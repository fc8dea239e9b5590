package infra

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

const (
	logFormatJSON = "json"
	logFormatText = "text"
)

// Observability holds logger, tracer provider and metrics registry of the application
type Observability struct {
	Logger   *logrus.Logger
	Tracer   *trace.TracerProvider
	Registry *prometheus.Registry
}

// Shutdown flushes pending spans
func (o *Observability) Shutdown(ctx context.Context) error {
	return o.Tracer.Shutdown(ctx)
}

// NewObservability configures logrus standard logger, global tracer provider and prometheus registry.
// Spans are exported only when otlp endpoint is configured.
func NewObservability(ctx context.Context, telemetryCfg config.TelemetryCfg, logCfg config.LogCfg) (*Observability, error) {
	logger, err := NewLogger(logCfg)
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(attribute.String("service.name", telemetryCfg.ServiceName))

	tpOpts := []trace.TracerProviderOption{
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(telemetryCfg.SampleRatio))),
	}

	if telemetryCfg.OtlpEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(telemetryCfg.OtlpEndpoint), otlptracehttp.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("failed to build otlp trace exporter - %w", err)
		}
		tpOpts = append(tpOpts, trace.WithBatcher(exporter))
	}

	tp := trace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{Logger: logger, Tracer: tp, Registry: registry}, nil
}

// NewLogger configures logrus standard logger, services log through it directly
func NewLogger(cfg config.LogCfg) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level - %w", err)
	}

	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)

	switch cfg.Format {
	case logFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case logFormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %s", cfg.Format)
	}
	return logger, nil
}
