package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "minaria.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	state := quest.NewState()
	state.Ledger.AwardOnce("stage1_0_step0", 10)
	state.Ledger.AwardOnce("stage2_1", 25)
	state.LastPlayDate = "2026-08-30"
	state.LastLoginDate = "2026-08-30"
	state.LoginBonusGivenToday = true

	sess := New("test-session", state, st)
	require.NoError(t, sess.Save(ctx))

	ls, err := st.LoadLearner(ctx)
	require.NoError(t, err)
	assert.Equal(t, 35, ls.XP)
	assert.Equal(t, "2026-08-30", ls.LastPlayDate)
	assert.True(t, ls.BonusGivenToday)
	assert.ElementsMatch(t, []string{"stage1_0_step0", "stage2_1"}, ls.EarnedKeys)

	restored := quest.Restore(ls.XP, ls.EarnedKeys)
	assert.Equal(t, 35, restored.Ledger.XP())
	assert.True(t, restored.Ledger.Earned("stage2_1"))
}

func TestRecordAnswerPersistsProgress(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	state := quest.NewState()
	sess := New("test-session", state, st)

	state.Stage1Begin()
	res := state.SubmitCopy(`print("Hello, world!")`)
	require.True(t, res.Correct)
	require.NoError(t, sess.RecordAnswer(ctx, 1, 0, quest.StepCopy, `print("Hello, world!")`, res))

	ls, err := st.LoadLearner(ctx)
	require.NoError(t, err)
	assert.Equal(t, quest.XPCopy, ls.XP)
	assert.Contains(t, ls.EarnedKeys, "stage1_0_step0")
}

func TestNilStoreIsSafe(t *testing.T) {
	sess := New("test-session", quest.NewState(), nil)
	assert.NoError(t, sess.Save(context.Background()))
	assert.NoError(t, sess.RecordAnswer(context.Background(), 1, 0, quest.StepCopy, "x", quest.Result{}))
}

func TestRecordAnswerReportsStoreFailure(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "minaria.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	state := quest.NewState()
	state.Stage1Begin()
	res := state.SubmitCopy(`print("Hello, world!")`)
	require.True(t, res.Correct)

	sess := New("test-session", state, st)
	err = sess.RecordAnswer(ctx, 1, 0, quest.StepCopy, `print("Hello, world!")`, res)

	assert.Error(t, err, "a closed store must surface the write failure")
	assert.Equal(t, quest.XPCopy, state.Ledger.XP(), "in-memory progress survives the failed save")
}

func TestHeaderInfo(t *testing.T) {
	state := quest.NewState()
	state.Ledger.Award(60)
	sess := New("test-session", state, nil)

	info := sess.HeaderInfo()
	assert.Equal(t, 2, info.Level)
	assert.Equal(t, 60, info.XP)
	assert.Equal(t, "🌱 Poyon Meadow Wanderer", info.Title)
}
