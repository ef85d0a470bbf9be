// Package home is the kingdom gate: the stage menu, the promise
// banner, and the doors to chat and the record book.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/router"
	"github.com/Maho1100/minaria-quest/internal/screen"
	chatscreen "github.com/Maho1100/minaria-quest/internal/screens/chat"
	"github.com/Maho1100/minaria-quest/internal/screens/help"
	"github.com/Maho1100/minaria-quest/internal/screens/mypage"
	stagescreen "github.com/Maho1100/minaria-quest/internal/screens/stage"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/ui/components"
	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

// HomeScreen is the root screen of the application.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(sess *session.Session) *HomeScreen {
	h := &HomeScreen{sess: sess}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	var items []components.MenuItem

	for _, stage := range content.Stages() {
		stage := stage
		items = append(items, components.MenuItem{
			Label: stage.Emoji + " " + stage.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stagescreen.New(h.sess, stage.ID)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "💬 Talk with Minaria",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chatscreen.New(h.sess)}
				}
			},
		},
		components.MenuItem{
			Label: "📜 My Page",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: mypage.New(h.sess)}
				}
			},
		},
		components.MenuItem{
			Label: "📖 Help",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: help.New()}
				}
			},
		},
		components.MenuItem{
			Label: "🚪 Leave the Kingdom",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Cocomoa Kingdom"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// Progress hints are recomputed every frame so a stage cleared a
	// moment ago shows up as soon as the learner returns.
	for i, stage := range content.Stages() {
		done, total := h.sess.State.StageDone(stage.ID)
		switch {
		case done >= total:
			h.menu.Items[i].Hint = "cleared ✅  replay to review"
		case done > 0:
			h.menu.Items[i].Hint = fmt.Sprintf("%d / %d healed", done, total)
		default:
			h.menu.Items[i].Hint = ""
		}
	}

	var sections []string

	sections = append(sections, theme.Title.Render("🌼 Minaria's Python Quest"))
	sections = append(sections, theme.Subtitle.Render("heal the bug monsters, one small spell at a time"))
	sections = append(sections, "")
	sections = append(sections, theme.Card.Render(theme.Body.Render(h.sess.State.PromiseBanner())))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
