package prototype

import (
	"encoding/json"
	"fmt"

	"github.com/randalmurphal/creational/pkg/creational/registry"
)

// decoders maps snapshot kind names to restore functions. The built-in
// prototypes register at init; RegisterKind adds custom prototypes so
// their snapshots round-trip too.
var decoders = registry.New[string, func([]byte) (Cloner, error)]()

func init() {
	RegisterKind("circle", func(data []byte) (Cloner, error) {
		c := &Circle{}
		return c, json.Unmarshal(data, c)
	})
	RegisterKind("rectangle", func(data []byte) (Cloner, error) {
		r := &Rectangle{}
		return r, json.Unmarshal(data, r)
	})
	RegisterKind("label", func(data []byte) (Cloner, error) {
		l := &Label{}
		return l, json.Unmarshal(data, l)
	})
}

// RegisterKind adds a snapshot decoder for a prototype kind.
func RegisterKind(kind string, decode func([]byte) (Cloner, error)) {
	decoders.Register(kind, decode)
}

// Catalog holds named prototypes. Clone returns a fresh copy of the
// stored original, so callers can never mutate the catalog's master.
type Catalog struct {
	entries *registry.Registry[string, Cloner]
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: registry.New[string, Cloner]()}
}

// Put stores a prototype under a name, replacing any existing entry.
func (c *Catalog) Put(name string, p Cloner) {
	c.entries.Register(name, p)
}

// Clone returns a fresh clone of the named prototype.
func (c *Catalog) Clone(name string) (Cloner, error) {
	p, ok := c.entries.Get(name)
	if !ok {
		return nil, fmt.Errorf("prototype: unknown prototype %q", name)
	}
	return p.Clone(), nil
}

// Names returns the catalog's entry names in sorted order.
func (c *Catalog) Names() []string {
	return c.entries.Keys()
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return c.entries.Len()
}

// SaveTo writes a snapshot of every entry to the store. Snapshots are
// the prototypes' JSON state keyed by catalog name.
func (c *Catalog) SaveTo(store Store) error {
	var saveErr error
	c.entries.Range(func(name string, p Cloner) bool {
		data, err := json.Marshal(p)
		if err != nil {
			saveErr = fmt.Errorf("snapshot %q: %w", name, err)
			return false
		}
		if err := store.Save(name, p.Kind(), data); err != nil {
			saveErr = fmt.Errorf("save %q: %w", name, err)
			return false
		}
		return true
	})
	return saveErr
}

// LoadFrom restores every snapshot in the store into the catalog,
// replacing entries with matching names. Snapshots of unregistered
// kinds are an error.
func (c *Catalog) LoadFrom(store Store) error {
	infos, err := store.List()
	if err != nil {
		return err
	}

	for _, info := range infos {
		decode, ok := decoders.Get(info.Kind)
		if !ok {
			return fmt.Errorf("prototype: no decoder registered for kind %q", info.Kind)
		}

		data, err := store.Load(info.Name)
		if err != nil {
			return fmt.Errorf("load %q: %w", info.Name, err)
		}

		p, err := decode(data)
		if err != nil {
			return fmt.Errorf("decode %q: %w", info.Name, err)
		}
		c.entries.Register(info.Name, p)
	}
	return nil
}
