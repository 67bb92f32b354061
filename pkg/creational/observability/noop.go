package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// It is the default for registries created without metrics enabled.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordConstruction does nothing.
func (NoopMetrics) RecordConstruction(_ context.Context, _ string, _ time.Duration, _ error) {}

// RecordSlotHit does nothing.
func (NoopMetrics) RecordSlotHit(_ context.Context, _ string) {}
