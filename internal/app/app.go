// Package app owns the root Bubble Tea model: the screen router, the
// shared frame, and global key handling.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/router"
	"github.com/Maho1100/minaria-quest/internal/screen"
	"github.com/Maho1100/minaria-quest/internal/screens/home"
	"github.com/Maho1100/minaria-quest/internal/screens/intro"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/ui/layout"
)

// Options carries everything the TUI needs to run.
type Options struct {
	Session *session.Session

	// ShowIntro opens Minaria's welcome over the home screen, for
	// first-time visitors.
	ShowIntro bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	sess    *session.Session
	width   int
	height  int
	initCmd tea.Cmd
}

func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.Session))

	var initCmd tea.Cmd
	if opts.ShowIntro {
		initCmd = r.Push(intro.New())
	}

	return AppModel{
		router:  r,
		sess:    opts.Session,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.HeaderInfo(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
