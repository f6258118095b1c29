package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

// ScoreBar shows correct answers out of answered ones as a bar.
type ScoreBar struct {
	Score    int
	Answered int
	Width    int
}

// Percent returns the accuracy in [0, 1]. Zero answers count as 0.
func (p ScoreBar) Percent() float64 {
	if p.Answered <= 0 {
		return 0
	}
	return float64(p.Score) / float64(p.Answered)
}

// View renders "SCORE 3 / 5 [bar] 60%".
func (p ScoreBar) View() string {
	label := theme.Label.Render("SCORE") + "  " +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("%d / %d", p.Score, p.Answered)) + "  "

	percent := fmt.Sprintf("  %d%%", int(p.Percent()*100))

	barWidth := p.Width - lipgloss.Width(label) - len(percent)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	return label +
		lipgloss.NewStyle().Background(theme.Primary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(percent)
}
