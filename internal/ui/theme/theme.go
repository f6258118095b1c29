package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/question"
)

// Color palette: slate background with teal and sky highlights.
var (
	Primary   = lipgloss.Color("#2DD4BF") // Teal
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#EAB308") // Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#CBD5E1") // Light Slate
	Muted     = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Slate 900
	BgCard    = lipgloss.Color("#1E293B") // Slate 800
	Border    = lipgloss.Color("#334155") // Slate 700
)

// DifficultyColor returns the badge color for d.
func DifficultyColor(d question.Difficulty) color.Color {
	switch d {
	case question.Easy:
		return Success
	case question.Hard:
		return Error
	default:
		return Accent
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Label = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Faded = lipgloss.NewStyle().
		Foreground(Muted)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Bold(true).
		Padding(0, 1)
)
