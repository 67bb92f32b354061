package singleton

import "reflect"

// Constructor builds an instance of T. Construction arguments are the
// values the closure captures; they bind on the first successful call
// only. A returned error leaves the slot empty so a later call may retry.
type Constructor[T any] func() (*T, error)

// Slot is a typed handle on one class identity's slot in a registry.
// Obtain one with For; the zero value is not usable.
type Slot[T any] struct {
	r   *Registry
	key reflect.Type
}

// For returns the slot handle for type T in r. The class identity is the
// reflect.Type of T, so each distinct Go type gets its own slot.
func For[T any](r *Registry) Slot[T] {
	return Slot[T]{
		r:   r,
		key: reflect.TypeOf((*T)(nil)).Elem(),
	}
}

// Get returns the instance for T, constructing it with ctor if the slot
// is empty. Under concurrent calls, exactly one constructor runs and
// every caller receives the identical pointer. If the slot is already
// populated, ctor is never invoked and its captured arguments are
// silently discarded. A constructor error propagates unchanged and the
// slot stays empty.
func (s Slot[T]) Get(ctor Constructor[T]) (*T, error) {
	instance, err := s.r.getInstance(s.key, func() (any, error) {
		return ctor()
	})
	if err != nil {
		return nil, err
	}
	return instance.(*T), nil
}

// Must is Get but panics on construction failure. Use for constructors
// that cannot fail.
func (s Slot[T]) Must(ctor Constructor[T]) *T {
	instance, err := s.Get(ctor)
	if err != nil {
		panic("singleton: construction failed: " + err.Error())
	}
	return instance
}

// Instance returns the populated instance without constructing.
// Returns ErrNotConstructed if no construction has succeeded yet.
func (s Slot[T]) Instance() (*T, error) {
	instance, err := s.r.peek(s.key)
	if err != nil {
		return nil, err
	}
	return instance.(*T), nil
}

// Constructed reports whether the slot is populated.
func (s Slot[T]) Constructed() bool {
	return s.r.has(s.key)
}

// Forget empties the slot. Like Registry.Reset, this exists for test
// isolation only.
func (s Slot[T]) Forget() {
	s.r.forget(s.key)
}

// GetInstance returns the instance for T from the DefaultRegistry,
// constructing it with ctor if needed.
func GetInstance[T any](ctor Constructor[T]) (*T, error) {
	return For[T](DefaultRegistry).Get(ctor)
}

// MustInstance is GetInstance but panics on construction failure.
func MustInstance[T any](ctor Constructor[T]) *T {
	return For[T](DefaultRegistry).Must(ctor)
}

// Instance returns the DefaultRegistry's populated instance for T, or
// ErrNotConstructed.
func Instance[T any]() (*T, error) {
	return For[T](DefaultRegistry).Instance()
}

// Constructed reports whether the DefaultRegistry slot for T is populated.
func Constructed[T any]() bool {
	return For[T](DefaultRegistry).Constructed()
}
