// Package memstore provides an in-memory store implementation for testing.
package memstore

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"github.com/discochess/endgame/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is an in-memory store for testing.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		objects: make(map[string][]byte),
	}
}

// Set stores the data under a name (for test setup). The data is
// copied to prevent caller mutations from affecting the store.
func (s *Store) Set(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.objects[name] = copied
}

// Get returns the stored bytes for a name (for test assertions).
func (s *Store) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[name]
	return data, ok
}

// List returns the stored names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Open opens the named object for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Create opens the named object for writing; content is stored on
// Close.
func (s *Store) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	return &memWriter{store: s, name: name}, nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() error {
	return nil
}

type memWriter struct {
	store *Store
	name  string
	buf   bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	w.store.Set(w.name, w.buf.Bytes())
	return nil
}
