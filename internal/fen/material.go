package fen

import "strings"

// SideMaterial holds the non-king piece counts for one side.
type SideMaterial struct {
	Pawns   int
	Knights int
	Rooks   int
	Queens  int

	// Bishops split by square color of the square they stand on.
	LightBishops int
	DarkBishops  int
}

// Bishops returns the total bishop count for the side.
func (s SideMaterial) Bishops() int {
	return s.LightBishops + s.DarkBishops
}

// pieces returns the side's total piece count including the king.
func (s SideMaterial) pieces() int {
	return 1 + s.Pawns + s.Knights + s.Bishops() + s.Rooks + s.Queens
}

// Material represents the piece counts for both sides.
type Material struct {
	White SideMaterial
	Black SideMaterial
}

// ParseMaterial extracts material counts from the placement field of a
// FEN string. Kings are assumed present and not counted.
func ParseMaterial(fen string) (Material, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return Material{}, ErrInvalidFEN
	}

	var m Material
	rank := 7
	file := 0
	for _, ch := range parts[0] {
		if ch == '/' {
			rank--
			file = 0
			continue
		}
		if ch >= '1' && ch <= '8' {
			file += int(ch - '0')
			continue
		}

		// a1 is a dark square, so light squares have odd file+rank.
		light := (file+rank)%2 == 1
		switch ch {
		case 'P':
			m.White.Pawns++
		case 'N':
			m.White.Knights++
		case 'B':
			if light {
				m.White.LightBishops++
			} else {
				m.White.DarkBishops++
			}
		case 'R':
			m.White.Rooks++
		case 'Q':
			m.White.Queens++
		case 'p':
			m.Black.Pawns++
		case 'n':
			m.Black.Knights++
		case 'b':
			if light {
				m.Black.LightBishops++
			} else {
				m.Black.DarkBishops++
			}
		case 'r':
			m.Black.Rooks++
		case 'q':
			m.Black.Queens++
		case 'K', 'k':
			// Kings are always present, don't count.
		default:
			return Material{}, ErrInvalidFEN
		}
		file++
	}
	if rank != 0 {
		return Material{}, ErrInvalidFEN
	}

	return m, nil
}

// InsufficientForBoth reports whether neither side can force checkmate
// by any sequence of legal moves: bare kings, a lone minor piece
// against a bare king, or bishops confined to one square color with
// no other men on the board.
func (m Material) InsufficientForBoth() bool {
	return m.insufficient(m.White, m.Black) && m.insufficient(m.Black, m.White)
}

// insufficient reports whether the given side cannot force mate
// against the opposing side.
func (m Material) insufficient(side, opponent SideMaterial) bool {
	if side.Pawns > 0 || side.Rooks > 0 || side.Queens > 0 {
		return false
	}

	if side.Knights > 0 {
		// A lone knight cannot mate unless the opponent has material
		// to stand in the way of its own king.
		return side.pieces() <= 2 && opponent.pieces()-opponent.Queens <= 1
	}

	if side.Bishops() > 0 {
		// Bishops on a single square color can never deliver mate,
		// regardless of how many there are, as long as no pawns or
		// knights remain to interfere.
		lightOnly := m.White.DarkBishops+m.Black.DarkBishops == 0
		darkOnly := m.White.LightBishops+m.Black.LightBishops == 0
		noPawns := m.White.Pawns+m.Black.Pawns == 0
		noKnights := m.White.Knights+m.Black.Knights == 0
		return (lightOnly || darkOnly) && noPawns && noKnights
	}

	// Bare king.
	return true
}
