package quest

import (
	"github.com/Maho1100/minaria-quest/internal/answer"
	"github.com/Maho1100/minaria-quest/internal/content"
)

// XP paid per stage 1 step on first clear.
const (
	XPCopy    = 10
	XPChoice  = 20
	XPRewrite = 20
)

const reviewMsg = "Great review! You cleared this one before, so your XP stays put."

// Stage1Begin leaves the introduction and opens the first question's
// copy step.
func (s *State) Stage1Begin() {
	p := s.Stage(1)
	if p.Step == StepIntro {
		p.Step = StepCopy
	}
}

// Stage1Question returns the current question, or false once all
// questions are finished.
func (s *State) Stage1Question() (content.Question, bool) {
	stage := content.Stage1()
	p := s.Stage(1)
	if p.Index >= len(stage.Questions) {
		p.Cleared = true
		return content.Question{}, false
	}
	return stage.Questions[p.Index], true
}

// SubmitCopy grades the copy step against the sample line.
func (s *State) SubmitCopy(input string) Result {
	q, ok := s.Stage1Question()
	if !ok {
		return Result{}
	}
	p := s.Stage(1)

	switch answer.Match(input, q.CopySample) {
	case answer.Empty:
		return Result{
			Empty:   true,
			Message: "Nothing written yet. Just a little is fine, try copying the sample.",
		}
	case answer.Incorrect:
		return Result{
			Message: "Hmm, not quite. Compare the spelling and where the parentheses go.",
		}
	}

	return s.award(stage1Key(p.Index, StepCopy), XPCopy, p.Review,
		"Perfect! You copied the sample exactly. Run it below and watch what happens.",
		reviewMsg)
}

// Stage1ToChoice moves from the copy step to the choice step.
func (s *State) Stage1ToChoice() {
	p := s.Stage(1)
	if p.Step == StepCopy {
		p.Step = StepChoice
	}
}

// SubmitStage1Choice grades the multiple-choice step.
func (s *State) SubmitStage1Choice(choice int) Result {
	q, ok := s.Stage1Question()
	if !ok {
		return Result{}
	}
	p := s.Stage(1)

	if choice != q.CorrectIndex {
		return Result{
			Message: "Not this one. But it's all right, everyone hesitates here.",
			Hint:    q.Hint,
		}
	}

	res := s.award(stage1Key(p.Index, StepChoice), XPChoice, p.Review,
		"The bug monster gave a little smile!",
		reviewMsg)
	res.Hint = q.Explain
	return res
}

// Stage1ToRewrite moves from the choice step to the rewrite step.
func (s *State) Stage1ToRewrite() {
	p := s.Stage(1)
	if p.Step == StepChoice {
		p.Step = StepRewrite
	}
}

// SubmitRewrite grades the unaided rewrite step. The variable question
// accepts any well-formed name assignment rather than one fixed
// answer.
func (s *State) SubmitRewrite(input string) Result {
	q, ok := s.Stage1Question()
	if !ok {
		return Result{}
	}
	p := s.Stage(1)

	if answer.Normalize(input) == "" {
		return Result{
			Empty:   true,
			Message: "Nothing written yet. One line is all it takes.",
		}
	}

	correct := false
	if p.Index == 1 {
		correct = answer.IsNameAssignment(input)
	} else {
		correct = answer.Match(input, q.RewriteAnswer) == answer.Correct
	}
	if !correct {
		return Result{
			Message: "Hmm, a little off. Think back to the shape of the sample.",
		}
	}

	return s.award(stage1Key(p.Index, StepRewrite), XPRewrite, p.Review,
		"You wrote it with your own hands! That's wonderful!",
		reviewMsg)
}

// Stage1NextQuestion advances to the next question's copy step.
func (s *State) Stage1NextQuestion() {
	p := s.Stage(1)
	p.Index++
	p.Step = StepCopy
	if p.Index >= len(content.Stage1().Questions) {
		p.Cleared = true
	}
}

// Stage1StartReview restarts the stage from the introduction with XP
// awards disabled.
func (s *State) Stage1StartReview() {
	p := s.Stage(1)
	p.Index = 0
	p.Step = StepIntro
	p.Review = true
}
