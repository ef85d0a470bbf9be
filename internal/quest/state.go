package quest

import (
	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/titles"
)

// StageProgress is the in-session cursor for one stage.
type StageProgress struct {
	Index   int
	Step    Step
	Review  bool
	Cleared bool
}

// State is the full session state: the XP ledger plus per-stage
// cursors and the day-tracking flags.
type State struct {
	Ledger *titles.Ledger
	Stages map[int]*StageProgress

	// ISO dates, empty until first set.
	LastPlayDate  string
	LastLoginDate string

	LoginBonusGivenToday bool
	ShowReturnBanner     bool
}

// NewState creates a fresh session with an empty ledger. Stage 1
// starts at the introduction step.
func NewState() *State {
	return &State{
		Ledger: titles.NewLedger(),
		Stages: map[int]*StageProgress{
			1: {Step: StepIntro},
			2: {},
			3: {},
		},
	}
}

// Restore rebuilds session state from persisted XP and deed keys.
// Stage cursors restart at the beginning; cleared flags are derived
// from the deed set so finished stages open in review.
func Restore(xp int, earnedKeys []string) *State {
	s := NewState()
	s.Ledger = titles.RestoredLedger(xp, earnedKeys)
	for _, stage := range content.Stages() {
		done, total := s.StageDone(stage.ID)
		if total > 0 && done >= total {
			s.Stages[stage.ID].Cleared = true
		}
	}
	return s
}

// Stage returns the cursor for a stage, creating it if needed.
func (s *State) Stage(id int) *StageProgress {
	p, ok := s.Stages[id]
	if !ok {
		p = &StageProgress{}
		if id == 1 {
			p.Step = StepIntro
		}
		s.Stages[id] = p
	}
	return p
}

// StageDone counts fully finished questions in a stage. A stage 1
// question counts once its rewrite step has paid out.
func (s *State) StageDone(stageID int) (done, total int) {
	stage, ok := content.StageByID(stageID)
	if !ok {
		return 0, 0
	}
	total = len(stage.Questions)
	for i := range stage.Questions {
		var k Key
		if stageID == 1 {
			k = stage1Key(i, StepRewrite)
		} else {
			k = choiceKey(stageID, i)
		}
		if s.Ledger.Earned(k.String()) {
			done++
		}
	}
	return done, total
}

// PromiseBanner picks the home-screen banner for the current phase.
func (s *State) PromiseBanner() string {
	if s.ShowReturnBanner {
		return content.PromiseWelcomeBack
	}
	if s.Stage(1).Cleared {
		return content.PromiseReturning
	}
	return content.PromiseFirstVisit
}

// NextRecommendation suggests the next stage to play, or an empty
// string when everything is cleared.
func (s *State) NextRecommendation() string {
	for _, stage := range content.Stages() {
		done, total := s.StageDone(stage.ID)
		if done < total {
			return stage.Emoji + " " + stage.Name
		}
	}
	return ""
}
