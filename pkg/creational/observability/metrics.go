package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records instance-construction metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConstruction records one constructor invocation with its
	// duration and error status.
	RecordConstruction(ctx context.Context, key string, duration time.Duration, err error)

	// RecordSlotHit records a request that was served from an already
	// populated slot without invoking the constructor.
	RecordSlotHit(ctx context.Context, key string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	constructions       metric.Int64Counter
	constructionLatency metric.Float64Histogram
	constructionErrors  metric.Int64Counter
	slotHits            metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the instruments on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("creational")

	constructions, err := meter.Int64Counter("creational.singleton.constructions",
		metric.WithDescription("Number of constructor invocations"),
	)
	if err != nil {
		return nil, err
	}

	constructionLatency, err := meter.Float64Histogram("creational.singleton.construction_latency_ms",
		metric.WithDescription("Constructor latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	constructionErrors, err := meter.Int64Counter("creational.singleton.construction_errors",
		metric.WithDescription("Number of failed constructor invocations"),
	)
	if err != nil {
		return nil, err
	}

	slotHits, err := meter.Int64Counter("creational.singleton.slot_hits",
		metric.WithDescription("Number of requests served from a populated slot"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		constructions:       constructions,
		constructionLatency: constructionLatency,
		constructionErrors:  constructionErrors,
		slotHits:            slotHits,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If instrument creation fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConstruction records one constructor invocation.
func (m *otelMetrics) RecordConstruction(ctx context.Context, key string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("key", key),
	}

	m.constructions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.constructionLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(attrs...))

	if err != nil {
		m.constructionErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSlotHit records a request served without constructing.
func (m *otelMetrics) RecordSlotHit(ctx context.Context, key string) {
	m.slotHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
	))
}
