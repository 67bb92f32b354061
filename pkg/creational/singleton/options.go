package singleton

import (
	"log/slog"

	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithName sets the registry name carried in logs and trace attributes.
func WithName(name string) Option {
	return func(r *Registry) {
		r.name = name
	}
}

// WithLogger enables construction-lifecycle logging. Slot hits log at
// debug level and record the slot key only; the supplied constructor
// arguments are never inspected or compared.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Pass
// observability.NewMetricsRecorder() to emit OTel metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		r.metrics = m
	}
}

// WithTracing wraps each constructor invocation in an OTel span using the
// global tracer provider.
func WithTracing() Option {
	return func(r *Registry) {
		r.tracing = true
	}
}
