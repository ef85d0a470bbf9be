package quest

// Result reports the outcome of grading one submission.
type Result struct {
	Correct    bool
	Empty      bool
	FirstClear bool
	XPGained   int
	Message    string
	Hint       string
	// NewTitle is set when the award pushed the learner past a tier
	// threshold.
	NewTitle string
}

// award pays the keyed deed through the ledger unless the session is
// in review mode, and fills in the XP and title fields.
func (s *State) award(key Key, points int, review bool, firstMsg, repeatMsg string) Result {
	if review {
		return Result{Correct: true, Message: repeatMsg}
	}

	before := s.Ledger.Title()
	if !s.Ledger.AwardOnce(key.String(), points) {
		return Result{Correct: true, Message: repeatMsg}
	}

	res := Result{
		Correct:    true,
		FirstClear: true,
		XPGained:   points,
		Message:    firstMsg,
	}
	if after := s.Ledger.Title(); after != before {
		res.NewTitle = after
	}
	return res
}
