package replay

import (
	"strings"
	"testing"
)

// loydStalemate is the shortest known stalemate game (Sam Loyd, 1866),
// already normalized: no check or mate decorations.
const loydStalemate = "e3 a5 Qh5 Ra6 Qxa5 h5 Qxc7 Rah6 h4 f6 Qxd7 Kf7 Qxb7 Qd3 Qxb8 Qh7 Qxc8 Kg6 Qe6"

func tokens(s string) []string {
	return strings.Fields(s)
}

func TestScanStalemate(t *testing.T) {
	out := Scan(tokens(loydStalemate))

	if out.State != StalemateTerminal {
		t.Fatalf("state = %v, want %v", out.State, StalemateTerminal)
	}
	if !out.Flags.Stalemate {
		t.Error("stalemate flag not set")
	}
	if out.Flags.Threefold || out.Flags.FiftyMove {
		t.Errorf("unexpected flags: %+v", out.Flags)
	}
	if out.Plies != 19 {
		t.Errorf("plies = %d, want 19", out.Plies)
	}
}

func TestScanThreefold(t *testing.T) {
	// Knight shuffle: the starting position occurs for the third time
	// after the eighth ply, counting the initial occurrence.
	out := Scan(tokens("Nf3 Nf6 Ng1 Ng8 Nf3 Nf6 Ng1 Ng8"))

	if out.State != ThreefoldTerminal {
		t.Fatalf("state = %v, want %v", out.State, ThreefoldTerminal)
	}
	if !out.Flags.Threefold {
		t.Error("threefold flag not set")
	}
	if out.Plies != 8 {
		t.Errorf("plies = %d, want 8", out.Plies)
	}
}

func TestScanThreefoldAfterPawnPush(t *testing.T) {
	// After 1.e4 e5 the rendered FEN carries an en-passant square even
	// though no en-passant capture is legal. The later recurrences of
	// the same position render with no en-passant square, so the key
	// must treat them as the same position.
	out := Scan(tokens("e4 e5 Nf3 Nf6 Ng1 Ng8 Nf3 Nf6 Ng1 Ng8"))

	if out.State != ThreefoldTerminal {
		t.Fatalf("state = %v, want %v", out.State, ThreefoldTerminal)
	}
	if !out.Flags.Threefold {
		t.Error("threefold flag not set")
	}
	if out.Plies != 10 {
		t.Errorf("plies = %d, want 10", out.Plies)
	}
}

func TestScanLegalEnPassantDistinguishesPosition(t *testing.T) {
	// The start position has a playable en-passant capture (fxg6). The
	// same piece placement recurs twice more with the capture gone, so
	// only two of the three occurrences share a key and no repetition
	// is reached.
	out, err := ScanFrom(
		"4k3/8/8/5Pp1/8/8/8/4K3 w - g6 0 1",
		tokens("Ke2 Kd8 Ke1 Ke8 Ke2 Kd8 Ke1 Ke8"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if out.State != Exhausted {
		t.Fatalf("state = %v, want %v", out.State, Exhausted)
	}
	if out.Flags.Threefold {
		t.Error("threefold flag set, want unset")
	}
	if out.Plies != 8 {
		t.Errorf("plies = %d, want 8", out.Plies)
	}
}

func TestScanFiftyMove(t *testing.T) {
	// Rook tour from a position with the clock at 90: ten reversible
	// plies push it to 100. Every position is distinct, so the
	// fifty-move limit fires before any repetition can.
	out, err := ScanFrom(
		"4k3/8/8/8/8/8/8/4K2R w - - 90 60",
		tokens("Rh2 Kd8 Rh3 Kc8 Rh4 Kb8 Rh5 Ka8 Rh6 Kb8"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if out.State != FiftyMoveTerminal {
		t.Fatalf("state = %v, want %v", out.State, FiftyMoveTerminal)
	}
	if !out.Flags.FiftyMove {
		t.Error("fifty-move flag not set")
	}
	if out.Plies != 10 {
		t.Errorf("plies = %d, want 10", out.Plies)
	}
}

func TestScanInsufficientMaterialContinues(t *testing.T) {
	// Bishop takes the last rook, leaving KB vs K; the flag is set on
	// first occurrence and the scan keeps going to the end.
	out, err := ScanFrom(
		"4k3/8/8/8/8/8/r7/B3K3 w - - 0 1",
		tokens("Bxa2 Kd7 Kd2 Ke6"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if out.State != Exhausted {
		t.Fatalf("state = %v, want %v", out.State, Exhausted)
	}
	if !out.Flags.InsufficientMaterial {
		t.Error("insufficient material flag not set")
	}
	if out.Plies != 4 {
		t.Errorf("plies = %d, want 4", out.Plies)
	}
}

func TestScanMalformedToken(t *testing.T) {
	out := Scan(tokens("e4 e5 Qz9 Nc6"))

	if out.State != MalformedTerminal {
		t.Fatalf("state = %v, want %v", out.State, MalformedTerminal)
	}
	if out.Plies != 2 {
		t.Errorf("plies = %d, want 2", out.Plies)
	}
	if out.Flags != (Flags{}) {
		t.Errorf("unexpected flags: %+v", out.Flags)
	}
}

func TestScanMalformedKeepsEarlierFlags(t *testing.T) {
	out, err := ScanFrom(
		"4k3/8/8/8/8/8/r7/B3K3 w - - 0 1",
		tokens("Bxa2 Kd7 Rh8"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if out.State != MalformedTerminal {
		t.Fatalf("state = %v, want %v", out.State, MalformedTerminal)
	}
	if !out.Flags.InsufficientMaterial {
		t.Error("flag set before the bad token should survive")
	}
}

func TestScanExhaustedDecisiveGame(t *testing.T) {
	// Fool's mate; checkmate is not a detector condition, the scan
	// simply runs out of tokens.
	out := Scan(tokens("f3 e5 g4 Qh4"))

	if out.State != Exhausted {
		t.Fatalf("state = %v, want %v", out.State, Exhausted)
	}
	if out.Flags != (Flags{}) {
		t.Errorf("unexpected flags: %+v", out.Flags)
	}
}

func TestScanEmpty(t *testing.T) {
	out := Scan(nil)
	if out.State != Exhausted {
		t.Fatalf("state = %v, want %v", out.State, Exhausted)
	}
	if out.Plies != 0 {
		t.Errorf("plies = %d, want 0", out.Plies)
	}
}

func TestScanFromRejectsBadFEN(t *testing.T) {
	if _, err := ScanFrom("not a fen", nil); err == nil {
		t.Fatal("expected error for invalid FEN")
	}
}
