// Package store defines the storage backend interface for reading
// input shards and writing output shards.
package store

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when an object does not exist in the store.
var ErrNotFound = errors.New("store: object not found")

// Store defines the interface for storage backends. Objects are
// addressed by name (the shard filename); backends handle paths,
// prefixes and transport internally.
type Store interface {
	// List returns the names of available objects, sorted.
	List(ctx context.Context) ([]string, error)

	// Open opens the named object for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create opens the named object for writing, replacing any
	// existing content. The write is complete when Close returns.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Close releases any resources held by the store.
	Close() error
}
