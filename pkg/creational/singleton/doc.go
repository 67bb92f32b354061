/*
Package singleton provides a thread-safe lazy single-instance registry.

A Registry guarantees that for any class identity at most one instance is
ever constructed, no matter how many goroutines request one concurrently.
The class identity is the Go type itself, derived from the generic type
parameter, so callers never pass keys by hand.

# Basic Usage

Request an instance through a slot handle; the constructor runs only if
the slot is empty:

	type Settings struct {
	    Value string
	}

	r := singleton.NewRegistry()
	s, err := singleton.For[Settings](r).Get(func() (*Settings, error) {
	    return &Settings{Value: "foo"}, nil
	})

Or use the process-wide DefaultRegistry:

	s, err := singleton.GetInstance[Settings](func() (*Settings, error) {
	    return &Settings{Value: "foo"}, nil
	})

# First-Write-Wins

The first successful construction binds its arguments permanently. Later
calls return the existing instance and never invoke their constructor, so
differing arguments are silently ignored rather than raising a mismatch:

	a, _ := singleton.GetInstance[Settings](func() (*Settings, error) {
	    return &Settings{Value: "foo"}, nil
	})
	b, _ := singleton.GetInstance[Settings](func() (*Settings, error) {
	    return &Settings{Value: "bar"}, nil // never runs
	})
	// a == b, both carry "foo"

# Failure and Retry

A constructor error propagates to the caller unchanged and leaves the
slot empty, so a later call may retry construction. No partially
initialized instance is ever stored.

# Concurrency

One mutex guards the whole registry. The slot check, the constructor
call, and the store form a single critical section, so N concurrent
requests for the same type produce exactly one constructor invocation and
N identical pointers. The lock is held while the constructor runs: a slow
constructor stalls every contender, so keep constructors fast.

# Observability

Registries are silent by default. Opt in per registry:

	r := singleton.NewRegistry(
	    singleton.WithName("app"),
	    singleton.WithLogger(slog.Default()),
	    singleton.WithMetrics(observability.NewMetricsRecorder()),
	    singleton.WithTracing(),
	)

Reset and Forget exist for test isolation only.
*/
package singleton
