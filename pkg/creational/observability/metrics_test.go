package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a manual-reader meter provider and returns
// the reader plus a cleanup function restoring the original provider.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestRecordConstruction(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordConstruction(ctx, "config.Settings", 5*time.Millisecond, nil)

	rm := collectMetrics(t, reader)

	counter := findMetric(rm, "creational.singleton.constructions")
	require.NotNil(t, counter)
	sum, ok := counter.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)

	latency := findMetric(rm, "creational.singleton.construction_latency_ms")
	require.NotNil(t, latency)

	// No error was recorded
	assert.Nil(t, findMetric(rm, "creational.singleton.construction_errors"))
}

func TestRecordConstructionError(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordConstruction(ctx, "config.Settings", time.Millisecond, errors.New("boom"))

	rm := collectMetrics(t, reader)

	errCounter := findMetric(rm, "creational.singleton.construction_errors")
	require.NotNil(t, errCounter)
	sum, ok := errCounter.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)
}

func TestRecordSlotHit(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordSlotHit(ctx, "config.Settings")
	m.RecordSlotHit(ctx, "config.Settings")

	rm := collectMetrics(t, reader)

	hits := findMetric(rm, "creational.singleton.slot_hits")
	require.NotNil(t, hits)
	sum, ok := hits.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func TestNoopMetrics(t *testing.T) {
	// Must not panic and must satisfy the interface
	var m MetricsRecorder = NoopMetrics{}
	m.RecordConstruction(context.Background(), "k", time.Second, errors.New("x"))
	m.RecordSlotHit(context.Background(), "k")
}
