/*
Package prototype demonstrates the prototype pattern: objects that
produce deep copies of themselves, a catalog of named masters, and
optional snapshot persistence.

# Cloning

Clone returns a deep copy with a fresh id and records the original's id
as the clone's parent:

	original := prototype.NewCircle(1.05)
	copy := original.Clone()
	// copy.ID() != original.ID(), copy.ParentID() == original.ID()

# Catalog

A Catalog hands out clones of named masters, never the masters
themselves:

	catalog := prototype.NewCatalog()
	catalog.Put("unit-circle", prototype.NewCircle(1))

	shape, err := catalog.Clone("unit-circle")

# Persistence

A catalog can be snapshotted to a Store and restored later. MemoryStore
is for tests; SQLiteStore persists across restarts:

	store, err := prototype.NewSQLiteStore("prototypes.db")
	if err != nil { ... }
	defer store.Close()

	if err := catalog.SaveTo(store); err != nil { ... }

	restored := prototype.NewCatalog()
	if err := restored.LoadFrom(store); err != nil { ... }

Custom prototype kinds participate in persistence by registering a
decoder with RegisterKind.
*/
package prototype
