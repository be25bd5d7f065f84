package endgame

import "fmt"

// Reason identifies why a game ended. Code values and labels are a
// compatibility contract with downstream consumers; two incompatible
// historical numberings exist, so neither the numbers nor the labels
// may change.
type Reason int

const (
	ReasonUnknown             Reason = 0
	ReasonCheckmate           Reason = 1
	ReasonResignation         Reason = 2
	ReasonTimeoutWin          Reason = 3
	ReasonTimeoutDraw         Reason = 4
	ReasonStalemate           Reason = 5
	ReasonThreefold           Reason = 6
	ReasonFiftyMove           Reason = 7
	ReasonInsufficientClaimed Reason = 8
	ReasonInsufficientAuto    Reason = 9
	ReasonAgreementDraw       Reason = 10
)

var reasonLabels = [...]string{
	ReasonUnknown:             "unknown",
	ReasonCheckmate:           "checkmate",
	ReasonResignation:         "resignation",
	ReasonTimeoutWin:          "timeout_win",
	ReasonTimeoutDraw:         "timeout_draw_by_insufficient_material",
	ReasonStalemate:           "stalemate",
	ReasonThreefold:           "threefold_repetition",
	ReasonFiftyMove:           "fifty_move_rule",
	ReasonInsufficientClaimed: "insufficient_material_claimed",
	ReasonInsufficientAuto:    "insufficient_material_automatic",
	ReasonAgreementDraw:       "agreement_draw",
}

// String returns the canonical label for the reason.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonLabels) {
		return fmt.Sprintf("reason(%d)", int(r))
	}
	return reasonLabels[r]
}

// Code returns the numeric code as written to output shards.
func (r Reason) Code() int32 {
	return int32(r)
}

// Reasons returns every reason in code order.
func Reasons() []Reason {
	all := make([]Reason, len(reasonLabels))
	for i := range all {
		all[i] = Reason(i)
	}
	return all
}
