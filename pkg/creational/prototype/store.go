package prototype

import (
	"errors"
	"time"
)

// Store persists prototype snapshots so a catalog survives restarts.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a snapshot under a catalog name, overwriting any
	// existing snapshot for that name.
	Save(name, kind string, data []byte) error

	// Load retrieves a snapshot's data.
	// Returns ErrNotFound if no snapshot exists for the name.
	Load(name string) ([]byte, error)

	// List returns metadata for all snapshots, sorted by name.
	// Returns an empty slice (not an error) when the store is empty.
	List() ([]Info, error)

	// Delete removes a snapshot. Deleting a missing name returns nil.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info describes a snapshot without loading its data.
type Info struct {
	Name      string
	Kind      string
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound indicates a snapshot doesn't exist.
	ErrNotFound = errors.New("prototype: snapshot not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("prototype: snapshot store closed")
)
