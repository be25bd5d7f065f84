// Package gcsstore implements a Google Cloud Storage backend.
package gcsstore

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/discochess/endgame/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is a Google Cloud Storage backend.
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// New creates a new GCS store. The bucket must already exist.
func New(ctx context.Context, bucketName string, opts ...Option) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	s := &Store{
		client: client,
		bucket: client.Bucket(bucketName),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets a key prefix for all operations.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = strings.TrimSuffix(prefix, "/")
		if s.prefix != "" {
			s.prefix += "/"
		}
	}
}

// List returns the names of objects under the prefix, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: s.prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects: %w", err)
		}
		name := strings.TrimPrefix(attrs.Name, s.prefix)
		// Skip directory placeholders and nested prefixes.
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Open opens the named object for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := s.bucket.Object(s.prefix + name).NewReader(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("creating reader: %w", err)
	}
	return reader, nil
}

// Create opens the named object for writing. The object becomes
// visible when Close returns.
func (s *Store) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	return s.bucket.Object(s.prefix + name).NewWriter(ctx), nil
}

// Close releases resources.
func (s *Store) Close() error {
	return s.client.Close()
}
