// Package codec provides compression and decompression for shard data,
// selected by file extension.
package codec

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Codec provides compression and decompression functionality.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g., "zst").
	// Returns empty string for no compression.
	Extension() string
}

// ForPath returns the codec matching the path's outermost extension:
// zstd for .zst, gzip for .gz, and the pass-through codec otherwise.
func ForPath(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return Zstd{}
	case strings.HasSuffix(path, ".gz"):
		return Gzip{}
	default:
		return Noop{}
	}
}

// Zstd implements zstd compression.
type Zstd struct{}

// Compile-time check that Zstd implements Codec.
var _ Codec = Zstd{}

// Reader wraps r to decompress zstd data.
func (Zstd) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// Writer wraps w to compress data with zstd.
func (Zstd) Writer(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

// Extension returns "zst".
func (Zstd) Extension() string { return "zst" }

// Gzip implements gzip compression.
type Gzip struct{}

// Compile-time check that Gzip implements Codec.
var _ Codec = Gzip{}

// Reader wraps r to decompress gzip data.
func (Gzip) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Writer wraps w to compress data with gzip.
func (Gzip) Writer(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

// Extension returns "gz".
func (Gzip) Extension() string { return "gz" }

// Noop passes data through uncompressed.
type Noop struct{}

// Compile-time check that Noop implements Codec.
var _ Codec = Noop{}

// Reader returns r unchanged.
func (Noop) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// Writer returns w with a no-op Close.
func (Noop) Writer(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// Extension returns the empty string.
func (Noop) Extension() string { return "" }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
