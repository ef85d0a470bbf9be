// Package chat is the fireside talk with Minaria: free conversation,
// the daily bonus keyword, and a little XP per exchange.
package chat

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chatsvc "github.com/Maho1100/minaria-quest/internal/chat"
	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/screen"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/ui/layout"
	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

const offlineLine = "I can't hear the wind spirits today, so my replies are resting. The daily bonus still works, just say \"bonus\" 🌙"

type replyMsg struct {
	user  string
	reply string
	err   error
}

type voiceDoneMsg struct{}

type savedMsg struct {
	err error
}

const saveWarning = "Couldn't save your progress just now; your XP is safe for this session."

// ChatScreen holds the running conversation.
type ChatScreen struct {
	sess     *session.Session
	input    textinput.Model
	history  []chatsvc.Exchange
	thinking bool
	notice   string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen.
func New(sess *session.Session) *ChatScreen {
	ti := textinput.New()
	ti.Placeholder = "say something to Minaria..."
	ti.Prompt = "you ❯ "
	ti.CharLimit = 500
	ti.Focus()

	return &ChatScreen{
		sess:  sess,
		input: ti,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Focus()
}

func (c *ChatScreen) Title() string {
	return "Talk with Minaria"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.thinking = false
		c.history = append(c.history, chatsvc.Exchange{User: msg.user, Reply: msg.reply})
		var cmds []tea.Cmd
		if msg.err == nil {
			c.sess.State.AwardChatExchange()
			c.notice = fmt.Sprintf("+%d XP for the lovely talk ✨", quest.XPChatExchange)
			cmds = append(cmds, c.saveCmd(), c.speakCmd(msg.reply))
		}
		return c, tea.Batch(cmds...)

	case voiceDoneMsg:
		return c, nil

	case savedMsg:
		if msg.err != nil {
			c.notice = saveWarning
		}
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" || c.thinking {
		return nil
	}
	c.input.SetValue("")
	c.notice = ""

	// The bonus keyword is handled in-world, no model round trip.
	if quest.WantsBonus(text) {
		var line string
		if item, ok := c.sess.State.ClaimLoginBonus(c.sess.Rng); ok {
			line = fmt.Sprintf("Here you are, today's little present: a %s! (+%d XP) 🎁", item.Name, item.XP)
		} else {
			line = "You've already had today's present. Come see me again tomorrow 🌙"
		}
		c.history = append(c.history, chatsvc.Exchange{User: text, Reply: line})
		return c.saveCmd()
	}

	if c.sess.Chat == nil {
		c.history = append(c.history, chatsvc.Exchange{User: text, Reply: offlineLine})
		return nil
	}

	c.thinking = true
	svc := c.sess.Chat
	history := append([]chatsvc.Exchange(nil), c.history...)
	return func() tea.Msg {
		reply, err := svc.Reply(context.Background(), history, text)
		return replyMsg{user: text, reply: reply, err: err}
	}
}

func (c *ChatScreen) saveCmd() tea.Cmd {
	sess := c.sess
	return func() tea.Msg {
		return savedMsg{err: sess.Save(context.Background())}
	}
}

// speakCmd synthesizes the reply in the background. Voice is
// decorative, so failures vanish quietly.
func (c *ChatScreen) speakCmd(reply string) tea.Cmd {
	if c.sess.Voice == nil {
		return nil
	}
	sess := c.sess
	return func() tea.Msg {
		_, _ = sess.Voice.SpeakToFile(context.Background(), reply, sess.VoiceDir)
		return voiceDoneMsg{}
	}
}

func (c *ChatScreen) View(width, height int) string {
	userStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	minariaStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	wrap := lipgloss.NewStyle().Width(width - 8)

	var lines []string
	for _, ex := range c.history {
		lines = append(lines, wrap.Render(userStyle.Render("you ❯ ")+theme.Body.Render(ex.User)))
		lines = append(lines, wrap.Render(minariaStyle.Render("🌼 Minaria ❯ ")+theme.Body.Render(ex.Reply)))
		lines = append(lines, "")
	}
	if c.thinking {
		lines = append(lines, theme.Hint.Render("Minaria is thinking..."))
	}
	if c.notice != "" {
		lines = append(lines, theme.Hint.Render(c.notice))
	}

	// Keep only the tail that fits above the input line.
	logHeight := height - 4
	if logHeight < 1 {
		logHeight = 1
	}
	log := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(log) > logHeight {
		log = log[len(log)-logHeight:]
	}

	body := strings.Join(log, "\n") + "\n\n" + c.input.View()
	return lipgloss.NewStyle().Padding(1, 4).Render(body)
}
