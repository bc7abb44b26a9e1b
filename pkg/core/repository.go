package core

import "context"

// Store keys. The version suffix is the schema namespace: keys written by
// older releases are simply never read.
const (
	NotesKey   = "@notoo_notes_v3"
	FoldersKey = "@notoo_folders_v3"
)

// Store defines the contract of the flat key-value persistence.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism (filesystem, memory, ...).
type Store interface {
	// Get returns the raw value of a key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the value of a key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys.
	Keys(ctx context.Context) ([]string, error)

	// Initialize ensures the underlying storage is ready (e.g., create directories).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by stores that can report external changes.
type Watchable interface {
	// Watch emits an event for every change of a key matching pattern
	// (a glob, "*" for all keys) until ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
