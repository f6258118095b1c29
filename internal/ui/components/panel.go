package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every section of a screen
// so boxes line up. It is capped so cards don't stretch across wide
// terminals.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame centers content within the given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}
