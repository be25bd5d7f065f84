// Package diskstore implements a local filesystem storage backend.
package diskstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/discochess/endgame/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is a local filesystem backend. The root may be a directory or
// a glob pattern; globs are expanded by List and resolve to their
// containing directory for Open.
type Store struct {
	root string
	glob string
}

// New creates a store for the given location. A location containing
// glob metacharacters lists the matching files; otherwise it must be
// an existing directory, or a directory to be created for outputs.
func New(location string) (*Store, error) {
	if hasGlobMeta(location) {
		return &Store{root: filepath.Dir(location), glob: location}, nil
	}

	info, err := os.Stat(location)
	if err == nil && !info.IsDir() {
		// A plain file path behaves like a single-entry glob.
		return &Store{root: filepath.Dir(location), glob: location}, nil
	}

	return &Store{root: location}, nil
}

// List returns the matching shard filenames, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var paths []string
	var err error
	if s.glob != "" {
		paths, err = filepath.Glob(s.glob)
		if err != nil {
			return nil, fmt.Errorf("expanding glob %q: %w", s.glob, err)
		}
	} else {
		entries, err := os.ReadDir(s.root)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", s.root, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				paths = append(paths, filepath.Join(s.root, e.Name()))
			}
		}
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	sort.Strings(names)
	return names, nil
}

// Open opens the named object for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("opening shard: %w", err)
	}
	return f, nil
}

// Create opens the named object for writing, creating the root
// directory if needed.
func (s *Store) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return nil, fmt.Errorf("creating shard: %w", err)
	}
	return f, nil
}

// Close releases any resources held by the store.
func (s *Store) Close() error {
	return nil
}

// hasGlobMeta reports whether the path contains glob metacharacters.
func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}
