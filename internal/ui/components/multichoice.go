package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

// optionLabels letter the options shown to the player.
var optionLabels = []string{"A", "B", "C", "D"}

// OptionLabel returns the letter for option i ("A" for 0).
func OptionLabel(i int) string {
	if i >= 0 && i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprint(i + 1)
}

// MultiChoice renders a list of answer options. Before the answer is
// revealed it highlights the selection; afterwards it marks the correct
// option and, if different, the chosen one.
type MultiChoice struct {
	Options      []string
	Selected     int // -1 when nothing is selected
	CorrectIndex int
	Revealed     bool
	Width        int
}

// NewMultiChoice creates an unrevealed list with no selection.
func NewMultiChoice(options []string, correctIndex int, width int) MultiChoice {
	return MultiChoice{
		Options:      options,
		Selected:     -1,
		CorrectIndex: correctIndex,
		Width:        width,
	}
}

// View renders the options one per line inside full-width rows.
func (m MultiChoice) View() string {
	row := lipgloss.NewStyle().
		Width(m.Width).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	rows := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		line := fmt.Sprintf("%s)  %s", OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = row.Foreground(theme.Success).Bold(true).BorderForeground(theme.Success)
			line += "  ✓"
		case m.Revealed && i == m.Selected:
			style = row.Foreground(theme.Error).Bold(true).BorderForeground(theme.Error)
			line += "  ✗"
		case m.Revealed:
			style = row.Foreground(theme.Muted).BorderForeground(theme.Border)
		case i == m.Selected:
			style = row.Foreground(theme.Secondary).Bold(true).BorderForeground(theme.Secondary)
			line = "▸ " + line
		default:
			style = row.Foreground(theme.Text).BorderForeground(theme.Border)
		}
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}
