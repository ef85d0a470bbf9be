package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

// CodeInput wraps bubbles/textinput as a single-line Python prompt.
type CodeInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewCodeInput creates a new styled code input with a >>> prompt.
func NewCodeInput(placeholder string, charLimit int) CodeInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ">>> "
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return CodeInput{Model: ti}
}

// Init returns the initial command.
func (c CodeInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c CodeInput) Update(msg tea.Msg) (CodeInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input with a check or cross once graded.
func (c CodeInput) View() string {
	view := c.Model.View()
	if c.submitted {
		if c.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (c CodeInput) Value() string {
	return c.Model.Value()
}

// Submit marks the input as graded.
func (c *CodeInput) Submit(valid bool) {
	c.submitted = true
	c.valid = valid
}

// Reset clears the value and the graded marker.
func (c *CodeInput) Reset() {
	c.Model.SetValue("")
	c.submitted = false
	c.valid = false
}
