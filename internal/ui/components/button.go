package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

// Button is a fixed-width labelled button. A disabled button renders
// dimmed; a focused one is filled with its color.
type Button struct {
	Label    string
	Color    color.Color
	Width    int
	Focused  bool
	Disabled bool
}

// buttonChrome is the horizontal space taken by the border and padding.
const buttonChrome = 4

// NewButton creates a button in the primary color.
func NewButton(label string, width int) Button {
	return Button{Label: label, Color: theme.Primary, Width: width}
}

// View renders the button. Width counts the border and padding, and grows
// when the label would not fit on one line.
func (b Button) View() string {
	label := b.Label
	if b.Focused && !b.Disabled {
		label = "▸ " + label
	}

	style := lipgloss.NewStyle().
		Width(max(b.Width, lipgloss.Width(label)+buttonChrome)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case b.Disabled:
		return style.
			Foreground(theme.Muted).
			BorderForeground(theme.Border).
			Render(label)
	case b.Focused:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(b.Color).
			BorderForeground(b.Color).
			Render(label)
	default:
		return style.
			Foreground(b.Color).
			BorderForeground(theme.Border).
			Render(label)
	}
}
