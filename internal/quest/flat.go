package quest

import (
	"github.com/Maho1100/minaria-quest/internal/content"
)

// XP paid per question in the choice-only stages.
const (
	XPIfQuestion  = 25
	XPForQuestion = 30
)

func flatXP(stageID int) int {
	if stageID == 3 {
		return XPForQuestion
	}
	return XPIfQuestion
}

func flatClearMsg(stageID int) string {
	if stageID == 3 {
		return "Correct! You're climbing the tower stairs with ease now!"
	}
	return "Correct! The bug monster headed back into the forest looking relieved."
}

// FlatQuestion returns the current question of a choice-only stage, or
// false once the stage is finished.
func (s *State) FlatQuestion(stageID int) (content.Question, bool) {
	stage, ok := content.StageByID(stageID)
	if !ok {
		return content.Question{}, false
	}
	p := s.Stage(stageID)
	if p.Index >= len(stage.Questions) {
		p.Cleared = true
		return content.Question{}, false
	}
	return stage.Questions[p.Index], true
}

// SubmitFlatChoice grades the current question of a choice-only stage
// and advances to the next question on a correct answer.
func (s *State) SubmitFlatChoice(stageID, choice int) Result {
	q, ok := s.FlatQuestion(stageID)
	if !ok {
		return Result{}
	}
	p := s.Stage(stageID)

	if choice != q.CorrectIndex {
		return Result{
			Message: "Not this one. But it's all right, hesitating here is perfectly normal.",
			Hint:    q.Hint,
		}
	}

	res := s.award(choiceKey(stageID, p.Index), flatXP(stageID), p.Review,
		flatClearMsg(stageID),
		reviewMsg)
	res.Hint = q.Explain

	p.Index++
	if p.Index >= len(mustStage(stageID).Questions) {
		p.Cleared = true
	}
	return res
}

// FlatStartReview restarts a choice-only stage with XP awards disabled.
func (s *State) FlatStartReview(stageID int) {
	p := s.Stage(stageID)
	p.Index = 0
	p.Review = true
}

func mustStage(stageID int) content.Stage {
	stage, _ := content.StageByID(stageID)
	return stage
}
