// Package fen provides FEN (Forsyth-Edwards Notation) utilities for
// position keys and material analysis.
package fen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidFEN indicates the FEN string is malformed.
var ErrInvalidFEN = errors.New("invalid FEN notation")

// Key returns the recurrence-detection key for a position: the first
// four FEN fields (piece placement, side to move, castling rights,
// en passant square). Two positions repeat for threefold purposes iff
// their keys are equal; the halfmove clock and fullmove number are
// excluded on purpose.
func Key(fen string) (string, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return "", ErrInvalidFEN
	}

	if !isValidPiecePlacement(parts[0]) {
		return "", ErrInvalidFEN
	}
	if parts[1] != "w" && parts[1] != "b" {
		return "", ErrInvalidFEN
	}

	return strings.Join(parts[:4], " "), nil
}

// HalfmoveClock returns the halfmove clock (plies since the last pawn
// move or capture) from the fifth FEN field. Returns 0 when the field
// is absent, as in truncated four-field FENs.
func HalfmoveClock(fen string) (int, error) {
	parts := strings.Fields(fen)
	if len(parts) < 5 {
		return 0, nil
	}
	clock, err := strconv.Atoi(parts[4])
	if err != nil || clock < 0 {
		return 0, ErrInvalidFEN
	}
	return clock, nil
}

// isValidPiecePlacement validates the piece placement part of a FEN.
func isValidPiecePlacement(placement string) bool {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return false
	}

	for _, rank := range ranks {
		squares := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				squares += int(ch - '0')
			case ch == 'P', ch == 'N', ch == 'B', ch == 'R', ch == 'Q', ch == 'K',
				ch == 'p', ch == 'n', ch == 'b', ch == 'r', ch == 'q', ch == 'k':
				squares++
			default:
				return false
			}
		}
		if squares != 8 {
			return false
		}
	}

	return true
}
