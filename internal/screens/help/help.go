// Package help explains the rules of the quest.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/screen"
	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

const helpText = `How the adventure works

  🌱 Stage 1 heals each bug monster in three small steps:
     copy the sample line, pick the right answer, then write
     the line yourself with no sample in sight.

  🌿 Stage 2 and 🌀 Stage 3 are quick multiple-choice battles.
     Press the number of your answer, or move with ↑↓ and enter.

  ✦ Every first clear pays XP. Titles unlock as XP grows, and
    every 50 XP is one level. Replaying a question never pays
    twice, and review runs are just for practice.

  💬 Chatting with Minaria pays a little XP per exchange.
     Say "bonus" once a day for a small present.

Keys

  ↑↓ / j k   move        enter   confirm
  1-4        choose      esc     back`

// HelpScreen is a static rules page.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string { return "Help" }

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("📖 Traveler's Notes"))
	sections = append(sections, "")
	sections = append(sections, theme.Card.Render(theme.Body.Render(helpText)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
