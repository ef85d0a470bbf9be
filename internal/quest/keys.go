// Package quest drives the lesson flow: grading submissions, stepping
// the stage state machines, paying XP through the ledger, and keeping
// the session state that the screens render.
package quest

import "fmt"

// Step identifies the phase within a stage 1 question.
type Step int

const (
	// StepIntro is the stage introduction shown before the first question.
	StepIntro Step = iota - 1
	// StepCopy asks the learner to copy the sample line verbatim.
	StepCopy
	// StepChoice asks a multiple-choice question on the same theme.
	StepChoice
	// StepRewrite asks the learner to write a variation unaided.
	StepRewrite
)

// Key identifies one awardable deed. Stage 1 deeds are per-step, the
// other stages per-question.
type Key struct {
	Stage    int
	Question int
	Step     Step
}

// String renders the persisted form of the key.
func (k Key) String() string {
	if k.Stage == 1 {
		return fmt.Sprintf("stage1_%d_step%d", k.Question, k.Step)
	}
	return fmt.Sprintf("stage%d_%d", k.Stage, k.Question)
}

// stage1Key builds a deed key for a stage 1 step.
func stage1Key(question int, step Step) Key {
	return Key{Stage: 1, Question: question, Step: step}
}

// choiceKey builds a deed key for a stage 2 or 3 question.
func choiceKey(stage, question int) Key {
	return Key{Stage: stage, Question: question}
}
