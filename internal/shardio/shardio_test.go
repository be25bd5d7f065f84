package shardio

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "games_00001.jsonl", want: "jsonl"},
		{name: "games_00001.jsonl.zst", want: "jsonl"},
		{name: "games_00001.jsonl.gz", want: "jsonl"},
		{name: "games_00001.ndjson", want: "jsonl"},
		{name: "games_00001.parquet", want: "parquet"},
		{name: "games_00001.csv", wantErr: true},
		{name: "games_00001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Format(%q) error = %v, want ErrUnknownFormat", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
