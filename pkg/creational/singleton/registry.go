package singleton

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// ErrNotConstructed is returned when peeking at a slot that has not been
// populated by a successful construction yet.
var ErrNotConstructed = errors.New("singleton: instance not constructed")

// Registry holds at most one instance per class identity. The class
// identity is the reflect.Type derived from the generic type parameter of
// For, so distinct Go types can never collide.
//
// A slot has two states, empty and populated, with a single one-way
// transition on first successful construction. Constructor arguments are
// whatever the constructor closure captures; once a slot is populated,
// later closures are never invoked and their captured arguments are
// silently ignored.
//
// One mutex guards all slots. The check, the constructor call, and the
// store happen under a single lock acquisition, so concurrent callers for
// the same identity serialize and exactly one constructor runs. A slow
// constructor therefore blocks all contenders for the registry; callers
// should keep constructors fast.
type Registry struct {
	mu    sync.Mutex
	slots map[reflect.Type]any

	name    string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	tracing bool
}

// NewRegistry creates an empty registry. With no options it is silent:
// no logs, no metrics, no traces.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		slots:   make(map[reflect.Type]any),
		name:    "default",
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger != nil {
		r.logger = r.logger.With(slog.String("registry", r.name))
	}
	return r
}

// DefaultRegistry is the process-wide registry used by the package-level
// functions. It is created at package init and lives until process exit.
var DefaultRegistry = NewRegistry()

// getInstance implements the slot protocol for one class identity. A
// populated slot is returned as-is and construct never runs; an empty
// slot runs construct and stores the result only on success, leaving the
// slot empty for retry on error. The constructor's error propagates
// unchanged so errors.Is and errors.As keep working.
func (r *Registry) getInstance(key reflect.Type, construct func() (any, error)) (any, error) {
	ctx := context.Background()
	keyName := key.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if instance, ok := r.slots[key]; ok {
		r.metrics.RecordSlotHit(ctx, keyName)
		observability.LogSlotHit(r.logger, keyName)
		return instance, nil
	}

	var span trace.Span
	if r.tracing {
		ctx, span = observability.StartConstructionSpan(ctx, r.name, keyName)
	}

	start := time.Now()
	instance, err := construct()
	elapsed := time.Since(start)

	r.metrics.RecordConstruction(ctx, keyName, elapsed, err)
	if r.tracing {
		observability.EndSpanWithError(span, err)
	}

	if err != nil {
		observability.LogConstructionError(r.logger, keyName, err)
		return nil, err
	}

	r.slots[key] = instance
	observability.LogConstruction(r.logger, keyName, float64(elapsed.Microseconds())/1000.0)
	return instance, nil
}

// peek returns the populated instance for key, or ErrNotConstructed.
func (r *Registry) peek(key reflect.Type) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	instance, ok := r.slots[key]
	if !ok {
		return nil, ErrNotConstructed
	}
	return instance, nil
}

// has reports whether the slot for key is populated.
func (r *Registry) has(key reflect.Type) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.slots[key]
	return ok
}

// forget empties the slot for key.
func (r *Registry) forget(key reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
}

// Len returns the number of populated slots.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Reset empties every slot. Instances constructed before the reset stay
// valid for callers already holding them, but subsequent GetInstance
// calls construct anew. Intended for test isolation only; production code
// should never reset a live registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[reflect.Type]any)
}
