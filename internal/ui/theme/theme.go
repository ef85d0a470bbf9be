package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, soft pastel fantasy tones for the Cocomoa Kingdom mood
var (
	Primary   = lipgloss.Color("#C084FC") // Soft Violet
	Secondary = lipgloss.Color("#5EEAD4") // Mint
	Accent    = lipgloss.Color("#FBBF24") // Warm Gold
	Success   = lipgloss.Color("#4ADE80") // Meadow Green
	Error     = lipgloss.Color("#FB7185") // Soft Rose
	Text      = lipgloss.Color("#FAF5FF") // Near White
	TextDim   = lipgloss.Color("#A3A3C2") // Dusk Lavender
	BgDark    = lipgloss.Color("#1E1B2E") // Night Plum
	BgCard    = lipgloss.Color("#2D2842") // Twilight
	Border    = lipgloss.Color("#4C4669") // Faded Violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
