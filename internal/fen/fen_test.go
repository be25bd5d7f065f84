package fen

import (
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "starting position",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		},
		{
			name:  "position after e4",
			input: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		},
		{
			name:  "counters excluded from the key",
			input: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 10 20",
			want:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - -",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too few fields",
			input:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
			wantErr: true,
		},
		{
			name:    "invalid side to move",
			input:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
			wantErr: true,
		},
		{
			name:    "wrong rank count",
			input:   "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			wantErr: true,
		},
		{
			name:    "wrong square count",
			input:   "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Key(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Key() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHalfmoveClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "starting position",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  0,
		},
		{
			name:  "high clock",
			input: "4k3/8/8/8/8/8/8/4K2R w - - 99 120",
			want:  99,
		},
		{
			name:  "truncated four-field FEN",
			input: "4k3/8/8/8/8/8/8/4K2R w - -",
			want:  0,
		},
		{
			name:    "non-numeric clock",
			input:   "4k3/8/8/8/8/8/8/4K2R w - - x 1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HalfmoveClock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("HalfmoveClock() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("HalfmoveClock() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInsufficientForBoth(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{
			name: "starting position",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: false,
		},
		{
			name: "bare kings",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: true,
		},
		{
			name: "king and knight vs king",
			fen:  "4k3/8/8/8/8/8/8/4K1N1 w - - 0 1",
			want: true,
		},
		{
			name: "king and bishop vs king",
			fen:  "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1",
			want: true,
		},
		{
			name: "two knights vs bare king",
			fen:  "4k3/8/8/8/8/8/8/3NKN2 w - - 0 1",
			want: false,
		},
		{
			name: "bishops on same color both sides",
			fen:  "3bk3/8/8/8/8/8/8/2B1K3 w - - 0 1",
			want: true,
		},
		{
			name: "bishops on opposite colors",
			fen:  "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1",
			want: false,
		},
		{
			name: "king and rook vs king",
			fen:  "4k3/8/8/8/8/8/8/4K2R w - - 0 1",
			want: false,
		},
		{
			name: "king and pawn vs king",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
			want: false,
		},
		{
			name: "lone knight each side",
			fen:  "4kn2/8/8/8/8/8/8/1N2K3 w - - 0 1",
			want: false,
		},
		{
			name: "queen on the board",
			fen:  "4k3/8/8/8/8/8/8/3QK3 w - - 0 1",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMaterial(tt.fen)
			if err != nil {
				t.Fatalf("ParseMaterial(%q) error: %v", tt.fen, err)
			}
			if got := m.InsufficientForBoth(); got != tt.want {
				t.Errorf("InsufficientForBoth() = %v, want %v", got, tt.want)
			}
		})
	}
}
