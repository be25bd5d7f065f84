package endgame

// Detections are the replay-confirmed draw conditions for one game.
// All false when the replay pre-filter skipped the game or the move
// list was absent.
type Detections struct {
	Stalemate            bool
	Threefold            bool
	FiftyMove            bool
	InsufficientMaterial bool
}

// Facts are the resolver inputs: recorded metadata plus replay
// detections.
type Facts struct {
	Mated       bool
	Termination Termination
	Result      Result
	Detections  Detections
}

// rule is one predicate in the resolution cascade.
type rule struct {
	name   string
	reason Reason
	match  func(Facts) bool
}

// cascade is the resolution order. First match wins; the ordering is
// a compatibility contract. Checkmate outranks everything, then the
// metadata-only decisive and timeout rules, then the replay-confirmed
// draw conditions from strongest to weakest, then the draw fallbacks.
var cascade = []rule{
	{"checkmate", ReasonCheckmate, func(f Facts) bool {
		return f.Mated
	}},
	{"resignation", ReasonResignation, func(f Facts) bool {
		return f.Termination == TerminationNormal && f.Result.Decisive()
	}},
	{"timeout_win", ReasonTimeoutWin, func(f Facts) bool {
		return f.Termination == TerminationTimeForfeit && f.Result.Decisive()
	}},
	{"timeout_draw", ReasonTimeoutDraw, func(f Facts) bool {
		return f.Termination == TerminationTimeForfeit && f.Result == ResultDraw
	}},
	{"stalemate", ReasonStalemate, func(f Facts) bool {
		return f.Detections.Stalemate
	}},
	{"threefold", ReasonThreefold, func(f Facts) bool {
		return f.Detections.Threefold
	}},
	{"fifty_move", ReasonFiftyMove, func(f Facts) bool {
		return f.Detections.FiftyMove
	}},
	{"insufficient_claimed", ReasonInsufficientClaimed, func(f Facts) bool {
		return f.Termination == TerminationInsufficientClaimed
	}},
	{"insufficient_automatic", ReasonInsufficientAuto, func(f Facts) bool {
		return f.Detections.InsufficientMaterial
	}},
	{"agreement_draw", ReasonAgreementDraw, func(f Facts) bool {
		return f.Result == ResultDraw
	}},
}

// Resolve maps facts to exactly one end reason via the cascade.
func Resolve(f Facts) Reason {
	for _, r := range cascade {
		if r.match(f) {
			return r.reason
		}
	}
	return ReasonUnknown
}
