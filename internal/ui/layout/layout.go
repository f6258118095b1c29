package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

// AppName is shown at the left of every header.
const AppName = "Probability Ace"

// Smallest terminal the quiz renders in. A question card with four options
// and feedback needs the height more than the width.
const (
	MinWidth  = 64
	MinHeight = 22
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether a width x height terminal is below the minimum.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := theme.Body.Render("Terminal too small") + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("need %d x %d, have %d x %d", MinWidth, MinHeight, width, height))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

var (
	barStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderForeground(theme.Border)
	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// RenderHeader renders "Probability Ace › title" on the left and status on
// the right, above a rule.
func RenderHeader(title, status string, width int) string {
	left := brandStyle.Render(AppName)
	if title != "" {
		left += theme.Faded.Render("  ›  ") + theme.Body.Render(title)
	}
	return barStyle.
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		Render(spread(left, statusStyle.Render(status), width-2))
}

// RenderFooter renders the key hints below a rule.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return barStyle.
		Width(width).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		Render(strings.Join(parts, theme.Faded.Render("  ·  ")))
}

// RenderFrame stacks header, content and footer, padding content so the
// footer sits on the last line of a height-row terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// spread places left and right at the edges of a width-column line.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
