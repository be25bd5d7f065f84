// Package parquetshard reads and writes parquet game-record shards.
package parquetshard

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/discochess/endgame/internal/shardio"
)

// parallelism for parquet column marshaling; shards are modest, so a
// small value keeps goroutine churn down.
const parallelism = 2

// readChunk is the number of rows decoded per underlying read.
const readChunk = 1024

// Compile-time checks.
var (
	_ shardio.Reader = (*Reader)(nil)
	_ shardio.Writer = (*Writer)(nil)
)

// Reader streams rows from a parquet shard. Parquet needs random
// access, so the shard is slurped into memory first; this also lets
// parquet shards come from any storage backend.
type Reader struct {
	pr      *reader.ParquetReader
	rows    int
	cursor  int
	pending []shardio.Row
}

// NewReader reads the full shard from rc and prepares row iteration.
func NewReader(rc io.ReadCloser) (*Reader, error) {
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading shard: %w", err)
	}

	bf := buffer.NewBufferFileFromBytes(data)
	pr, err := reader.NewParquetReader(bf, new(shardio.Row), parallelism)
	if err != nil {
		return nil, fmt.Errorf("opening parquet shard: %w", err)
	}

	return &Reader{pr: pr, rows: int(pr.GetNumRows())}, nil
}

// Next returns the next row, or io.EOF at the end of the shard.
func (r *Reader) Next() (shardio.Row, error) {
	if len(r.pending) == 0 {
		if r.cursor >= r.rows {
			return shardio.Row{}, io.EOF
		}
		n := readChunk
		if remain := r.rows - r.cursor; remain < n {
			n = remain
		}
		chunk := make([]shardio.Row, n)
		if err := r.pr.Read(&chunk); err != nil {
			return shardio.Row{}, fmt.Errorf("reading parquet rows: %w", err)
		}
		r.cursor += n
		r.pending = chunk
	}

	row := r.pending[0]
	r.pending = r.pending[1:]
	return row, nil
}

// Close stops the parquet reader.
func (r *Reader) Close() error {
	r.pr.ReadStop()
	return nil
}

// Writer appends rows to a parquet shard with snappy compression.
type Writer struct {
	raw io.Closer
	pw  *writer.ParquetWriter
}

// NewWriter streams a parquet shard onto wc.
func NewWriter(wc io.WriteCloser) (*Writer, error) {
	wf := writerfile.NewWriterFile(wc)
	pw, err := writer.NewParquetWriter(wf, new(shardio.Result), parallelism)
	if err != nil {
		return nil, fmt.Errorf("opening parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	return &Writer{raw: wc, pw: pw}, nil
}

// Write appends one result row.
func (w *Writer) Write(res shardio.Result) error {
	return w.pw.Write(res)
}

// Close finalizes the parquet footer and closes the underlying writer.
func (w *Writer) Close() error {
	if err := w.pw.WriteStop(); err != nil {
		w.raw.Close()
		return err
	}
	return w.raw.Close()
}
