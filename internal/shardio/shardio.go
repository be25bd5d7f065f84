// Package shardio defines the row schemas and reader/writer interfaces
// for game-record shards.
package shardio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates the shard filename has no recognized
// encoding extension.
var ErrUnknownFormat = errors.New("shardio: unknown shard format")

// Row is one input shard row. Optional fields are pointers so that
// absent values survive both JSON and parquet decoding; consumers
// substitute empty/false defaults.
type Row struct {
	GameID      string  `json:"game_id" parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Moves       *string `json:"moves,omitempty" parquet:"name=moves, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Termination *string `json:"termination,omitempty" parquet:"name=termination, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Result      *string `json:"result,omitempty" parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Mated       *bool   `json:"mated,omitempty" parquet:"name=mated, type=BOOLEAN, repetitiontype=OPTIONAL"`
}

// Result is one output shard row.
type Result struct {
	GameID        string `json:"game_id" parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	EndReasonCode int32  `json:"end_reason_code" parquet:"name=end_reason_code, type=INT32"`
	EndReason     string `json:"end_reason" parquet:"name=end_reason, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Reader streams rows from one input shard. Next returns io.EOF after
// the last row.
type Reader interface {
	Next() (Row, error)
	Close() error
}

// Writer appends result rows to one output shard. The shard is
// complete when Close returns.
type Writer interface {
	Write(Result) error
	Close() error
}

// Format names the shard encoding for a filename: "jsonl" for
// .jsonl/.ndjson (optionally .zst or .gz compressed) and "parquet"
// for .parquet.
func Format(name string) (string, error) {
	stem := strings.TrimSuffix(strings.TrimSuffix(name, ".zst"), ".gz")
	switch {
	case strings.HasSuffix(stem, ".jsonl"), strings.HasSuffix(stem, ".ndjson"):
		return "jsonl", nil
	case strings.HasSuffix(stem, ".parquet"):
		return "parquet", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}
