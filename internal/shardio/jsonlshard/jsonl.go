// Package jsonlshard reads and writes newline-delimited JSON shards,
// optionally zstd or gzip compressed.
package jsonlshard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/discochess/endgame/internal/codec"
	"github.com/discochess/endgame/internal/shardio"
)

// maxLineBytes bounds a single JSON record; move lists for even
// extreme games fit comfortably.
const maxLineBytes = 10 * 1024 * 1024

// Compile-time checks.
var (
	_ shardio.Reader = (*Reader)(nil)
	_ shardio.Writer = (*Writer)(nil)
)

// Reader streams rows from a JSONL shard.
type Reader struct {
	raw     io.Closer
	decoded io.ReadCloser
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps rc with the codec matching name and scans one JSON
// row per line.
func NewReader(name string, rc io.ReadCloser) (*Reader, error) {
	decoded, err := codec.ForPath(name).Reader(rc)
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	return &Reader{raw: rc, decoded: decoded, scanner: scanner}, nil
}

// Next returns the next row, or io.EOF at the end of the shard. Blank
// lines are skipped.
func (r *Reader) Next() (shardio.Row, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var row shardio.Row
		if err := json.Unmarshal(line, &row); err != nil {
			return shardio.Row{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return row, nil
	}
	if err := r.scanner.Err(); err != nil {
		return shardio.Row{}, fmt.Errorf("reading shard: %w", err)
	}
	return shardio.Row{}, io.EOF
}

// Close closes the decompressor and the underlying reader.
func (r *Reader) Close() error {
	if err := r.decoded.Close(); err != nil {
		r.raw.Close()
		return err
	}
	return r.raw.Close()
}

// Writer appends rows to a JSONL shard.
type Writer struct {
	raw     io.Closer
	encoded io.WriteCloser
	buf     *bufio.Writer
}

// NewWriter wraps wc with the codec matching name.
func NewWriter(name string, wc io.WriteCloser) (*Writer, error) {
	encoded, err := codec.ForPath(name).Writer(wc)
	if err != nil {
		return nil, fmt.Errorf("creating compressor: %w", err)
	}
	return &Writer{raw: wc, encoded: encoded, buf: bufio.NewWriter(encoded)}, nil
}

// Write appends one result row.
func (w *Writer) Write(res shardio.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling row: %w", err)
	}
	if _, err := w.buf.Write(data); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// Close flushes and closes the compressor and the underlying writer.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.raw.Close()
		return err
	}
	if err := w.encoded.Close(); err != nil {
		w.raw.Close()
		return err
	}
	return w.raw.Close()
}
