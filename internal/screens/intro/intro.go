// Package intro shows Minaria's welcome to first-time visitors.
package intro

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/router"
	"github.com/Maho1100/minaria-quest/internal/screen"
	"github.com/Maho1100/minaria-quest/internal/ui/components"
	"github.com/Maho1100/minaria-quest/internal/ui/layout"
	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

// IntroScreen plays Minaria's greeting before the home screen.
type IntroScreen struct{}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen.
func New() *IntroScreen {
	return &IntroScreen{}
}

func (i *IntroScreen) Init() tea.Cmd {
	return nil
}

func (i *IntroScreen) Title() string {
	return "Welcome"
}

func (i *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
	}
}

func (i *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", " ":
			return i, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return i, nil
}

func (i *IntroScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("🌼 Minaria's Python Quest"))
	sections = append(sections, "")
	sections = append(sections, theme.Card.Render(theme.Body.Render(content.IntroMessage)))
	sections = append(sections, "")
	sections = append(sections, components.NewButton("Step into the kingdom", true, nil).View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
