package endgame

import (
	"strings"

	"github.com/discochess/endgame/internal/shardio"
)

// Termination is the platform-recorded category for how a game session
// ended. It is metadata about the recording, distinct from the
// rules-derived Reason this package computes.
type Termination int

const (
	TerminationUnknown Termination = iota
	TerminationNormal
	TerminationTimeForfeit
	TerminationInsufficientClaimed
	TerminationAbandoned
	TerminationRulesInfraction
	TerminationUnterminated
)

// String returns the termination name.
func (t Termination) String() string {
	switch t {
	case TerminationNormal:
		return "Normal"
	case TerminationTimeForfeit:
		return "TimeForfeit"
	case TerminationInsufficientClaimed:
		return "InsufficientMaterialClaimed"
	case TerminationAbandoned:
		return "Abandoned"
	case TerminationRulesInfraction:
		return "RulesInfraction"
	case TerminationUnterminated:
		return "Unterminated"
	default:
		return "Unknown"
	}
}

// ParseTermination maps a source termination label to its category.
// Matching folds case and separators, so "Time forfeit", "TimeForfeit"
// and "time_forfeit" all parse alike. Unrecognized or empty labels
// become TerminationUnknown.
func ParseTermination(s string) Termination {
	switch foldLabel(s) {
	case "normal":
		return TerminationNormal
	case "timeforfeit":
		return TerminationTimeForfeit
	case "insufficientmaterialclaimed", "insufficientmaterial":
		return TerminationInsufficientClaimed
	case "abandoned":
		return TerminationAbandoned
	case "rulesinfraction":
		return TerminationRulesInfraction
	case "unterminated":
		return TerminationUnterminated
	default:
		return TerminationUnknown
	}
}

// foldLabel lowercases and removes spaces, underscores and hyphens.
func foldLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// Result is the recorded game result.
type Result int

const (
	ResultUnknown Result = iota
	ResultWhiteWin
	ResultBlackWin
	ResultDraw
)

// String returns the conventional result notation.
func (r Result) String() string {
	switch r {
	case ResultWhiteWin:
		return "1-0"
	case ResultBlackWin:
		return "0-1"
	case ResultDraw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Decisive reports whether the result names a winner.
func (r Result) Decisive() bool {
	return r == ResultWhiteWin || r == ResultBlackWin
}

// ParseResult maps a source result string to its category.
// Unrecognized or empty values become ResultUnknown.
func ParseResult(s string) Result {
	switch strings.TrimSpace(s) {
	case "1-0":
		return ResultWhiteWin
	case "0-1":
		return ResultBlackWin
	case "1/2-1/2":
		return ResultDraw
	default:
		return ResultUnknown
	}
}

// Record is one game to classify. Absent source fields are already
// substituted with empty or false defaults.
type Record struct {
	GameID      string
	Moves       string
	Termination Termination
	Result      Result
	Mated       bool
}

// RecordFromRow converts a shard row into a Record, substituting
// defaults for absent optional fields.
func RecordFromRow(row shardio.Row) Record {
	rec := Record{GameID: row.GameID}
	if row.Moves != nil {
		rec.Moves = *row.Moves
	}
	if row.Termination != nil {
		rec.Termination = ParseTermination(*row.Termination)
	}
	if row.Result != nil {
		rec.Result = ParseResult(*row.Result)
	}
	if row.Mated != nil {
		rec.Mated = *row.Mated
	}
	return rec
}
