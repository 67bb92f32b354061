// Package registry provides a generic thread-safe registry of named entries.
//
// It is the shared substrate for the pattern packages: the factory package
// keeps its transport constructors in one, the abstractfactory package keeps
// its style families in one, and the prototype package's Catalog wraps one.
//
// # Registering constructors
//
//	kinds := registry.New[string, func() Transport]()
//	kinds.Register("truck", NewTruck)
//	kinds.Register("ship", NewShip)
//
//	ctor, ok := kinds.Get("truck")
//	if ok {
//	    t := ctor()
//	    // use t...
//	}
//
// # Lazy initialization
//
// GetOrCreate initializes an entry at most once per key, even under
// concurrent access:
//
//	pools := registry.New[string, *Pool]()
//	pool := pools.GetOrCreate("primary", func() *Pool {
//	    return NewPool("primary")
//	})
//
// For single-instance-per-type semantics with constructor error handling,
// see the singleton package instead.
//
// # Thread safety
//
// All methods are safe for concurrent use. Range and Keys operate on
// snapshots in sorted key order, so iteration output is deterministic and
// mutation during iteration is safe.
package registry
