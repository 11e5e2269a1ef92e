// Package storage persists the application's full state snapshot. A provider
// owns a single named slot holding one serialized document; the caller writes
// the entire tree after every mutation and reads it back once at startup.
package storage

import "errors"

// ErrNotFound is returned by Read when the slot has never been written.
var ErrNotFound = errors.New("snapshot not found")

type Provider interface {
	// Init prepares the underlying store (directories, schema).
	Init() error

	// Read returns the serialized snapshot, or ErrNotFound if the slot is
	// empty.
	Read() ([]byte, error)

	// Write replaces the slot with the given serialized snapshot.
	Write(data []byte) error

	Close() error

	// Path returns the location backing the store, for diagnostics.
	Path() string
}
