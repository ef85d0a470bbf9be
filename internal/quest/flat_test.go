package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatStageProgression(t *testing.T) {
	s := NewState()

	for i := 0; i < 3; i++ {
		q, ok := s.FlatQuestion(2)
		require.True(t, ok, "question %d should exist", i)

		res := s.SubmitFlatChoice(2, q.CorrectIndex)
		require.True(t, res.Correct)
		assert.Equal(t, XPIfQuestion, res.XPGained)
	}

	_, ok := s.FlatQuestion(2)
	assert.False(t, ok)
	assert.True(t, s.Stage(2).Cleared)
	assert.Equal(t, 3*XPIfQuestion, s.Ledger.XP())
}

func TestFlatWrongAnswerStays(t *testing.T) {
	s := NewState()

	q, _ := s.FlatQuestion(3)
	wrong := (q.CorrectIndex + 1) % 3

	res := s.SubmitFlatChoice(3, wrong)
	assert.False(t, res.Correct)
	assert.NotEmpty(t, res.Hint)
	assert.Equal(t, 0, s.Stage(3).Index, "wrong answer must not advance")
	assert.Zero(t, s.Ledger.XP())
}

func TestFlatStage3XP(t *testing.T) {
	s := NewState()
	q, _ := s.FlatQuestion(3)
	res := s.SubmitFlatChoice(3, q.CorrectIndex)
	assert.Equal(t, XPForQuestion, res.XPGained)
}

func TestFlatReviewNeverPays(t *testing.T) {
	s := NewState()
	s.FlatStartReview(2)

	q, _ := s.FlatQuestion(2)
	res := s.SubmitFlatChoice(2, q.CorrectIndex)
	assert.True(t, res.Correct)
	assert.Zero(t, res.XPGained)
	assert.Zero(t, s.Ledger.XP())
	assert.Equal(t, 1, s.Stage(2).Index, "review still advances")
}
