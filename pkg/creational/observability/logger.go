// Package observability provides structured logging, metrics, and tracing
// for instance construction: slog for logs, OpenTelemetry for metrics and
// spans. Everything is opt-in and has a no-op fallback when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds construction context to a logger.
// Returns a new logger carrying the registry name and slot key.
func EnrichLogger(logger *slog.Logger, registry, key string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("registry", registry),
		slog.String("key", key),
	)
}

// LogConstruction logs a successful first construction for a slot.
func LogConstruction(logger *slog.Logger, key string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("instance constructed",
		slog.String("key", key),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConstructionError logs a failed construction. The slot stays empty,
// so a later caller may retry.
func LogConstructionError(logger *slog.Logger, key string, err error) {
	if logger == nil {
		return
	}
	logger.Error("construction failed",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

// LogSlotHit logs a request that found its slot already populated.
// Only the key is recorded; supplied arguments are never inspected.
func LogSlotHit(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("existing instance returned",
		slog.String("key", key),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that reports the elapsed time in milliseconds.
//
//	done := TimedOperation()
//	// ... construct ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
