// Package replay applies a normalized SAN token sequence to a board
// and detects rules-based terminal draw conditions along the way.
package replay

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/discochess/endgame/internal/fen"
)

// State is the terminal state of a scan. The scan is a single forward
// pass with no backtracking; each terminal state records why it ended.
type State int

const (
	// Scanning is the non-terminal state while tokens remain.
	Scanning State = iota
	// StalemateTerminal means the side to move had no legal moves and
	// was not in check.
	StalemateTerminal
	// ThreefoldTerminal means a position key occurred three times.
	ThreefoldTerminal
	// FiftyMoveTerminal means the halfmove clock reached 100.
	FiftyMoveTerminal
	// MalformedTerminal means a token could not be resolved to a legal
	// move; flags gathered before the bad token remain valid.
	MalformedTerminal
	// Exhausted means every token was applied without a stopping
	// condition.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case StalemateTerminal:
		return "stalemate"
	case ThreefoldTerminal:
		return "threefold"
	case FiftyMoveTerminal:
		return "fifty_move"
	case MalformedTerminal:
		return "malformed"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Flags are the per-game detection results.
type Flags struct {
	Stalemate            bool
	Threefold            bool
	FiftyMove            bool
	InsufficientMaterial bool
}

// Outcome describes a completed scan.
type Outcome struct {
	Flags Flags
	State State
	// Plies is the number of tokens successfully applied.
	Plies int
}

// halfmoveLimit is the clock value at which the fifty-move rule
// applies: 100 plies without a pawn move or capture.
const halfmoveLimit = 100

// repetitionLimit is the occurrence count that constitutes threefold
// repetition, the starting position included.
const repetitionLimit = 3

// Scan replays tokens from the standard initial position.
func Scan(tokens []string) Outcome {
	return scan(chess.StartingPosition(), tokens)
}

// ScanFrom replays tokens from an arbitrary FEN start. The position's
// halfmove clock is honored, so a game resumed near the fifty-move
// horizon detects the limit where it actually falls.
func ScanFrom(startFEN string, tokens []string) (Outcome, error) {
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(startFEN)); err != nil {
		return Outcome{}, fmt.Errorf("parsing start position: %w", err)
	}
	return scan(pos, tokens), nil
}

// scan is the detector state machine. Conditions are evaluated after
// each applied move in a fixed order: stalemate, threefold, fifty-move
// (each terminal), then insufficient material, which is recorded and
// scanning continues because a later threefold or fifty-move condition
// outranks it.
func scan(pos *chess.Position, tokens []string) Outcome {
	var out Outcome
	out.State = Scanning

	notation := chess.AlgebraicNotation{}
	seen := map[string]int{}
	if key, err := positionKey(pos, pos.String()); err == nil {
		seen[key] = 1
	}

	for _, tok := range tokens {
		if tok == "" {
			continue
		}

		move, err := notation.Decode(pos, tok)
		if err != nil {
			// Tokens arrive with check and mate decorations stripped,
			// which strict SAN decoding may refuse. Fall back to
			// matching the token against each legal move's encoding
			// with the same decorations removed.
			move = matchStripped(pos, tok)
			if move == nil {
				out.State = MalformedTerminal
				return out
			}
		}
		pos = pos.Update(move)
		out.Plies++

		if pos.Status() == chess.Stalemate {
			out.Flags.Stalemate = true
			out.State = StalemateTerminal
			return out
		}

		fenStr := pos.String()

		key, err := positionKey(pos, fenStr)
		if err != nil {
			out.State = MalformedTerminal
			return out
		}
		seen[key]++
		if seen[key] >= repetitionLimit {
			out.Flags.Threefold = true
			out.State = ThreefoldTerminal
			return out
		}

		clock, err := fen.HalfmoveClock(fenStr)
		if err != nil {
			out.State = MalformedTerminal
			return out
		}
		if clock >= halfmoveLimit {
			out.Flags.FiftyMove = true
			out.State = FiftyMoveTerminal
			return out
		}

		if !out.Flags.InsufficientMaterial {
			if m, err := fen.ParseMaterial(fenStr); err == nil && m.InsufficientForBoth() {
				out.Flags.InsufficientMaterial = true
			}
		}
	}

	out.State = Exhausted
	return out
}

// positionKey returns the repetition key for pos, rendered as fenStr.
// A double pawn push records an en-passant square even when no
// en-passant capture is legal; a phantom square must not make
// otherwise identical positions distinct, so the en-passant field is
// kept only when a capture onto it is actually playable.
func positionKey(pos *chess.Position, fenStr string) (string, error) {
	key, err := fen.Key(fenStr)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(key, " -") && !hasLegalEnPassant(pos) {
		key = key[:strings.LastIndex(key, " ")] + " -"
	}
	return key, nil
}

// hasLegalEnPassant reports whether the side to move has a legal
// en-passant capture.
func hasLegalEnPassant(pos *chess.Position) bool {
	for _, move := range pos.ValidMoves() {
		if move.HasTag(chess.EnPassant) {
			return true
		}
	}
	return false
}

// matchStripped resolves a decoration-stripped SAN token by encoding
// every legal move and comparing with its own decorations stripped.
// Returns nil when no legal move matches.
func matchStripped(pos *chess.Position, tok string) *chess.Move {
	notation := chess.AlgebraicNotation{}
	for _, move := range pos.ValidMoves() {
		enc := strings.TrimRight(notation.Encode(pos, move), "+#")
		if enc == tok {
			return move
		}
	}
	return nil
}
