package chat

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

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func typeLine(s *ChatScreen, line string) {
	for _, r := range line {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func testChat() *ChatScreen {
	sess := session.New("test", quest.NewState(), nil)
	return New(sess)
}

func TestBonusKeywordPaysOncePerDay(t *testing.T) {
	c := testChat()

	typeLine(c, "bonus please")
	c.Update(enterKey())

	require.Len(t, c.history, 1)
	assert.Positive(t, c.sess.State.Ledger.XP())
	assert.True(t, c.sess.State.LoginBonusGivenToday)
	xpAfterFirst := c.sess.State.Ledger.XP()

	typeLine(c, "bonus again")
	c.Update(enterKey())

	require.Len(t, c.history, 2)
	assert.Equal(t, xpAfterFirst, c.sess.State.Ledger.XP(), "second claim pays nothing")
	assert.Contains(t, c.history[1].Reply, "tomorrow")
}

func TestOfflineChatStillAnswers(t *testing.T) {
	c := testChat()

	typeLine(c, "hello Minaria")
	c.Update(enterKey())

	require.Len(t, c.history, 1)
	assert.Equal(t, offlineLine, c.history[0].Reply)
	assert.Zero(t, c.sess.State.Ledger.XP(), "offline exchanges pay no XP")
}

func TestReplyAwardsExchangeXP(t *testing.T) {
	c := testChat()

	c.Update(replyMsg{user: "hi", reply: "Hello, little adventurer 🌼"})

	require.Len(t, c.history, 1)
	assert.Equal(t, quest.XPChatExchange, c.sess.State.Ledger.XP())
	assert.NotEmpty(t, c.notice)
}

func TestFailedReplyPaysNothing(t *testing.T) {
	c := testChat()

	c.Update(replyMsg{user: "hi", reply: "apology", err: assert.AnError})

	require.Len(t, c.history, 1)
	assert.Zero(t, c.sess.State.Ledger.XP())
}

func TestFailedSaveShowsWarning(t *testing.T) {
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "minaria.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	sess := session.New("test", quest.NewState(), st)
	c := New(sess)

	typeLine(c, "bonus please")
	_, cmd := c.Update(enterKey())
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(savedMsg)
	require.True(t, ok)
	require.Error(t, saved.err)

	c.Update(msg)
	assert.Equal(t, saveWarning, c.notice)
	assert.Contains(t, c.View(80, 30), "Couldn't save")
	assert.Positive(t, c.sess.State.Ledger.XP(), "the bonus stays in memory")
}

func TestEmptyInputIsIgnored(t *testing.T) {
	c := testChat()
	c.Update(enterKey())
	assert.Empty(t, c.history)
}
