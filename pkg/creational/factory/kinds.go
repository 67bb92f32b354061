package factory

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/creational/pkg/creational/config"
	"github.com/randalmurphal/creational/pkg/creational/registry"
)

// ErrUnknownKind indicates a kind name with no registered constructor.
var ErrUnknownKind = errors.New("factory: unknown transport kind")

// Kinds maps kind names to transport constructors. The built-in kinds
// are registered at init; RegisterKind adds more.
var Kinds = registry.New[string, func() Transport]()

func init() {
	Kinds.Register("truck", NewTruck)
	Kinds.Register("ship", NewShip)
	Kinds.Register("drone", NewDrone)
}

// RegisterKind adds a constructor under a kind name, replacing any
// existing registration for that name.
func RegisterKind(kind string, ctor func() Transport) {
	Kinds.Register(kind, ctor)
}

// New creates a transport by kind name.
func New(kind string) (Transport, error) {
	ctor, ok := Kinds.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}

// FromConfig creates a transport from a declarative spec:
//
//	kind: truck
//
// A missing kind key is an error rather than a default, so typos in
// config files surface immediately.
func FromConfig(cfg config.Config) (Transport, error) {
	kind := cfg.String("kind", "")
	if kind == "" {
		return nil, errors.New("factory: config is missing 'kind'")
	}
	return New(kind)
}
