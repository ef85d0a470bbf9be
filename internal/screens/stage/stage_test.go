package stage

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testScreen(stageID int) *StageScreen {
	sess := session.New("test", quest.NewState(), nil)
	return New(sess, stageID)
}

func typeLine(t *testing.T, s *StageScreen, line string) {
	t.Helper()
	for _, r := range line {
		s.Update(keyPress(r))
	}
}

func TestFlatStageFullRun(t *testing.T) {
	s := testScreen(2)
	require.Equal(t, phaseStageIntro, s.phase)

	// Correct choices for the three slumberwood questions.
	answers := []rune{'1', '1', '2'}

	s.Update(enterKey())
	for i, a := range answers {
		require.Equal(t, phaseLesson, s.phase, "question %d", i)
		s.Update(enterKey())
		require.Equal(t, phaseChoice, s.phase, "question %d", i)

		s.Update(keyPress(a))
		require.Equal(t, phaseChoiceResult, s.phase, "question %d", i)
		require.True(t, s.result.Correct, "question %d", i)

		s.Update(enterKey())
	}

	assert.Equal(t, phaseStageClear, s.phase)
	assert.True(t, s.sess.State.Stage(2).Cleared)
	assert.Equal(t, 3*quest.XPIfQuestion, s.sess.State.Ledger.XP())
}

func TestFlatStageWrongAnswerRetries(t *testing.T) {
	s := testScreen(2)
	s.Update(enterKey())
	s.Update(enterKey())
	require.Equal(t, phaseChoice, s.phase)

	s.Update(keyPress('2')) // correct is option 1
	require.Equal(t, phaseChoiceResult, s.phase)
	assert.False(t, s.result.Correct)
	assert.NotEmpty(t, s.result.Hint)
	assert.Zero(t, s.sess.State.Ledger.XP())

	s.Update(enterKey())
	assert.Equal(t, phaseChoice, s.phase, "wrong answer should reopen the same question")
	assert.Equal(t, 0, s.sess.State.Stage(2).Index)
}

func TestStage1CopyStep(t *testing.T) {
	s := testScreen(1)

	s.Update(enterKey()) // stage intro
	require.Equal(t, phaseLesson, s.phase)
	s.Update(enterKey()) // lesson
	require.Equal(t, phaseCopy, s.phase)

	typeLine(t, s, `print("Hello, world!")`)
	s.Update(enterKey())

	require.Equal(t, phaseCopyResult, s.phase)
	assert.True(t, s.result.Correct)
	assert.Equal(t, quest.XPCopy, s.result.XPGained)
	assert.Equal(t, quest.PreviewText, s.preview.Kind)
	assert.Equal(t, "Hello, world!", s.preview.Output)
}

func TestStage1EmptyCopyStaysOnInput(t *testing.T) {
	s := testScreen(1)
	s.Update(enterKey())
	s.Update(enterKey())
	require.Equal(t, phaseCopy, s.phase)

	s.Update(enterKey())

	assert.Equal(t, phaseCopy, s.phase)
	assert.NotEmpty(t, s.feedback)
	assert.Zero(t, s.sess.State.Ledger.XP())
}

func TestFailedSaveShowsWarning(t *testing.T) {
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "minaria.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	state := quest.NewState()
	sess := session.New("test", state, st)
	s := New(sess, 2)

	s.Update(enterKey())
	s.Update(enterKey())
	require.Equal(t, phaseChoice, s.phase)

	s.Update(keyPress('1'))
	require.Equal(t, phaseChoiceResult, s.phase)
	require.True(t, s.result.Correct)

	msg := s.persistCmd(2, 0, quest.Step(0), s.mc.Options[s.mc.ChosenIndex], s.result)()
	saved, ok := msg.(saveResultMsg)
	require.True(t, ok)
	require.Error(t, saved.err)

	s.Update(msg)
	assert.Equal(t, saveWarning, s.notice)
	assert.Contains(t, s.View(80, 30), "Couldn't save")
	assert.Equal(t, quest.XPIfQuestion, state.Ledger.XP(), "XP stays in memory")

	// A later successful save clears the warning.
	s.Update(saveResultMsg{})
	assert.Empty(t, s.notice)
}

func TestClearedStageOpensReviewOffer(t *testing.T) {
	state := quest.NewState()
	state.Stage(2).Cleared = true
	sess := session.New("test", state, nil)

	s := New(sess, 2)
	require.Equal(t, phaseReviewOffer, s.phase)

	s.Update(enterKey())
	assert.Equal(t, phaseStageIntro, s.phase)
	assert.True(t, state.Stage(2).Review)
}
