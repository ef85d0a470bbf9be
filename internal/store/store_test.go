package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLearnerRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Fresh database loads the zero state.
	ls, err := s.LoadLearner(ctx)
	require.NoError(t, err)
	assert.Zero(t, ls.XP)
	assert.Empty(t, ls.EarnedKeys)

	ls = LearnerState{
		XP:              75,
		LastPlayDate:    "2026-08-30",
		LastLoginDate:   "2026-08-30",
		BonusGivenToday: true,
		EarnedKeys:      []string{"stage1_0_step0", "stage2_1"},
	}
	require.NoError(t, s.SaveLearner(ctx, ls))

	got, err := s.LoadLearner(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75, got.XP)
	assert.Equal(t, "2026-08-30", got.LastPlayDate)
	assert.True(t, got.BonusGivenToday)
	assert.ElementsMatch(t, ls.EarnedKeys, got.EarnedKeys)
}

func TestSaveLearnerIsUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearner(ctx, LearnerState{XP: 10, EarnedKeys: []string{"stage1_0_step0"}}))
	require.NoError(t, s.SaveLearner(ctx, LearnerState{XP: 30, EarnedKeys: []string{"stage1_0_step0", "stage1_0_step1"}}))

	got, err := s.LoadLearner(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, got.XP)
	assert.Len(t, got.EarnedKeys, 2, "re-saving a deed must not duplicate it")
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearner(ctx, LearnerState{XP: 100, EarnedKeys: []string{"stage3_0"}}))
	require.NoError(t, s.Reset(ctx))

	got, err := s.LoadLearner(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.XP)
	assert.Empty(t, got.EarnedKeys)
}

func TestRecordEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordAnswer(ctx, AnswerEvent{
		SessionID: "sess-1",
		Stage:     1,
		Question:  0,
		Step:      0,
		Submitted: `print("Hello, world!")`,
		Correct:   true,
		XPGained:  10,
	}))

	require.NoError(t, s.RecordLLM(ctx, LLMEvent{
		SessionID:    "sess-1",
		Purpose:      "chat",
		Model:        "gpt-4o-mini",
		InputTokens:  120,
		OutputTokens: 60,
	}))

	n, err := s.CountLLMEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
