// Package mypage renders the learner's record: title, level, XP, and
// per-stage progress.
package mypage

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/screen"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/titles"
	"github.com/Maho1100/minaria-quest/internal/ui/components"
	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

// MyPageScreen is the adventurer's record book.
type MyPageScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*MyPageScreen)(nil)

// New creates a MyPageScreen.
func New(sess *session.Session) *MyPageScreen {
	return &MyPageScreen{sess: sess}
}

func (m *MyPageScreen) Init() tea.Cmd { return nil }

func (m *MyPageScreen) Title() string { return "My Page" }

func (m *MyPageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return m, nil
}

func (m *MyPageScreen) View(width, height int) string {
	state := m.sess.State
	xp := state.Ledger.XP()

	var sections []string
	sections = append(sections, theme.Title.Render("📜 Adventurer's Record"))
	sections = append(sections, "")

	// Title and level card.
	badge := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(state.Ledger.Title())
	level := theme.Body.Render(fmt.Sprintf("Level %d   ✦ %d XP", state.Ledger.Level(), xp))
	sections = append(sections, theme.Card.Render(badge+"\n"+level))
	sections = append(sections, "")

	// Progress toward the next title, measured within the current
	// tier band.
	if p := titles.ProgressFor(xp); p.HasNext {
		bar := components.NewProgressBar("Next title", p.Ratio, true, 50)
		line := bar.View() + "\n" +
			theme.Hint.Render(fmt.Sprintf("%d XP until %s", p.Needed, p.Next.Name))
		sections = append(sections, line)
	} else {
		sections = append(sections, theme.Correct.Render("You hold the highest title in the kingdom!"))
	}
	sections = append(sections, "")

	// Per-stage progress.
	var cards []string
	for _, stage := range content.Stages() {
		done, total := state.StageDone(stage.ID)
		mark := theme.Hint.Render(fmt.Sprintf("%d / %d", done, total))
		if done >= total {
			mark = theme.Correct.Render("cleared ✅")
		}
		cards = append(cards, theme.Card.Render(
			theme.Body.Render(stage.Emoji+" "+stage.Name)+"\n"+mark))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if rec := state.NextRecommendation(); rec != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Next up: "+rec))
	}

	if state.LoginBonusGivenToday {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Today's bonus has been claimed 🎁"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
