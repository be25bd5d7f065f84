package endgame

import (
	"testing"

	"github.com/discochess/endgame/internal/stats"
)

// Sam Loyd's ten-move stalemate.
const loydStalemate = "e3 a5 Qh5 Ra6 Qxa5 h5 Qxc7 Rah6 h4 f6 Qxd7+ Kf7 Qxb7 Qd3 Qxb8 Qh7 Qxc8 Kg6 Qe6"

// A knight shuffle that repeats the starting position a third time.
const knightShuffle = "Nf3 Nf6 Ng1 Ng8 Nf3 Nf6 Ng1 Ng8"

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(WithStats(stats.NewNoop()))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want Reason
	}{
		{
			name: "stalemate",
			rec: Record{
				Moves:       loydStalemate,
				Termination: TerminationNormal,
				Result:      ResultDraw,
			},
			want: ReasonStalemate,
		},
		{
			name: "threefold repetition",
			rec: Record{
				Moves:       knightShuffle,
				Termination: TerminationNormal,
				Result:      ResultDraw,
			},
			want: ReasonThreefold,
		},
		{
			// The double pawn pushes record en-passant squares with no
			// legal capture; the repetition must still be found.
			name: "threefold repetition after pawn pushes",
			rec: Record{
				Moves:       "e4 e5 " + knightShuffle,
				Termination: TerminationNormal,
				Result:      ResultDraw,
			},
			want: ReasonThreefold,
		},
		{
			name: "checkmate",
			rec: Record{
				Moves:       "f3 e5 g4 Qh4#",
				Termination: TerminationNormal,
				Result:      ResultBlackWin,
				Mated:       true,
			},
			want: ReasonCheckmate,
		},
		{
			// A mate marker resolves even when the move list breaks
			// mid-replay.
			name: "malformed moves with mate marker",
			rec: Record{
				Moves:       "e4 e5 Qz9 Nc6",
				Termination: TerminationNormal,
				Result:      ResultWhiteWin,
				Mated:       true,
			},
			want: ReasonCheckmate,
		},
		{
			// A malformed draw falls through to the metadata rules.
			name: "malformed moves on a draw",
			rec: Record{
				Moves:       "e4 e5 Qz9 Nc6",
				Termination: TerminationNormal,
				Result:      ResultDraw,
			},
			want: ReasonAgreementDraw,
		},
		{
			name: "resignation",
			rec: Record{
				Moves:       "e4 e5",
				Termination: TerminationNormal,
				Result:      ResultWhiteWin,
			},
			want: ReasonResignation,
		},
		{
			name: "timeout win",
			rec: Record{
				Moves:       "e4 e5",
				Termination: TerminationTimeForfeit,
				Result:      ResultBlackWin,
			},
			want: ReasonTimeoutWin,
		},
		{
			name: "timeout draw",
			rec: Record{
				Termination: TerminationTimeForfeit,
				Result:      ResultDraw,
			},
			want: ReasonTimeoutDraw,
		},
		{
			name: "insufficient material claimed",
			rec: Record{
				Termination: TerminationInsufficientClaimed,
				Result:      ResultDraw,
			},
			want: ReasonInsufficientClaimed,
		},
		{
			// No move list means no detections; the reported draw
			// stands as an agreement.
			name: "draw without moves",
			rec: Record{
				Termination: TerminationNormal,
				Result:      ResultDraw,
			},
			want: ReasonAgreementDraw,
		},
		{
			name: "missing fields",
			rec:  Record{Termination: TerminationUnterminated},
			want: ReasonUnknown,
		},
	}

	c := newTestClassifier(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.rec); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier(t)
	rec := Record{
		Moves:       knightShuffle,
		Termination: TerminationNormal,
		Result:      ResultDraw,
	}
	first := c.Classify(rec)
	for i := 0; i < 10; i++ {
		if got := c.Classify(rec); got != first {
			t.Fatalf("run %d: Classify = %v, want %v", i, got, first)
		}
	}
}

func TestNewRejectsNegativeOptions(t *testing.T) {
	if _, err := New(WithWorkers(-1)); err == nil {
		t.Error("negative worker count should be rejected")
	}
	if _, err := New(WithBatchSize(-1)); err == nil {
		t.Error("negative batch size should be rejected")
	}
}
