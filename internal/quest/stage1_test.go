package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage1FullRun(t *testing.T) {
	s := NewState()

	assert.Equal(t, StepIntro, s.Stage(1).Step)
	s.Stage1Begin()
	assert.Equal(t, StepCopy, s.Stage(1).Step)

	// Question 1: print("Hello, world!")
	res := s.SubmitCopy(`print( "Hello, world!" )`)
	require.True(t, res.Correct)
	assert.True(t, res.FirstClear)
	assert.Equal(t, XPCopy, res.XPGained)

	s.Stage1ToChoice()
	res = s.SubmitStage1Choice(1)
	require.True(t, res.Correct)
	assert.Equal(t, XPChoice, res.XPGained)

	s.Stage1ToRewrite()
	res = s.SubmitRewrite(`print('Good job!')`)
	require.True(t, res.Correct)
	assert.Equal(t, XPRewrite, res.XPGained)

	assert.Equal(t, 50, s.Ledger.XP())

	s.Stage1NextQuestion()
	assert.Equal(t, 1, s.Stage(1).Index)
	assert.Equal(t, StepCopy, s.Stage(1).Step)
}

func TestStage1RewriteAcceptsAnyName(t *testing.T) {
	s := NewState()
	s.Stage1Begin()
	s.Stage(1).Index = 1
	s.Stage(1).Step = StepRewrite

	res := s.SubmitRewrite(`name = "Poyon"`)
	assert.True(t, res.Correct, "any non-empty name should pass on the variable question")

	s2 := NewState()
	s2.Stage1Begin()
	s2.Stage(1).Index = 1
	s2.Stage(1).Step = StepRewrite

	res = s2.SubmitRewrite(`name = ""`)
	assert.False(t, res.Correct, "empty string literal should fail")
}

func TestStage1WrongAndEmptySubmissions(t *testing.T) {
	s := NewState()
	s.Stage1Begin()

	res := s.SubmitCopy("   ")
	assert.True(t, res.Empty)
	assert.False(t, res.Correct)
	assert.Zero(t, s.Ledger.XP(), "empty submission must not pay")

	res = s.SubmitCopy(`print("Hello, wrld!")`)
	assert.False(t, res.Correct)
	assert.Zero(t, s.Ledger.XP())

	res = s.SubmitStage1Choice(0)
	assert.False(t, res.Correct)
	assert.NotEmpty(t, res.Hint, "wrong choice should come with the hint")
	assert.Zero(t, s.Ledger.XP())
}

func TestStage1RepeatPaysOnce(t *testing.T) {
	s := NewState()
	s.Stage1Begin()

	res := s.SubmitCopy(`print("Hello, world!")`)
	require.True(t, res.FirstClear)

	res = s.SubmitCopy(`print("Hello, world!")`)
	assert.True(t, res.Correct)
	assert.False(t, res.FirstClear)
	assert.Zero(t, res.XPGained)
	assert.Equal(t, XPCopy, s.Ledger.XP())
}

func TestStage1ReviewNeverPays(t *testing.T) {
	s := NewState()
	s.Stage1StartReview()
	s.Stage1Begin()

	res := s.SubmitCopy(`print("Hello, world!")`)
	assert.True(t, res.Correct)
	assert.Zero(t, res.XPGained)
	assert.Zero(t, s.Ledger.XP())
}

func TestStage1TitleUnlockReported(t *testing.T) {
	s := NewState()
	s.Stage1Begin()

	s.SubmitCopy(`print("Hello, world!")`)
	s.Stage1ToChoice()
	s.SubmitStage1Choice(1)
	s.Stage1ToRewrite()

	res := s.SubmitRewrite(`print("Good job!")`)
	require.True(t, res.FirstClear)
	assert.Equal(t, "🌱 Poyon Meadow Wanderer", res.NewTitle, "crossing 50 XP should unlock the next title")
}
