package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/components"
	"github.com/abhisek/probace/internal/ui/theme"
)

const intro = "Test your intuition and knowledge of probability. " +
	"Every round brings a fresh scenario to solve. Choose your difficulty and begin!"

// buttonWidth is the fixed width for difficulty buttons.
const buttonWidth = 12

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render("PROBABILITY ACE")))

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(intro))

	if !h.online {
		sections = append(sections, renderOfflineBanner(cw))
	}

	sections = append(sections, h.renderButtons(cw))

	if line := h.lastGameLine(); line != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(line))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

// renderButtons lays the difficulty buttons out in a row, colored like
// their badges, with Quit as a plain line underneath.
func (h *HomeScreen) renderButtons(cw int) string {
	if cw < len(h.levels)*(buttonWidth+4) {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(h.menu.View())
	}

	buttons := make([]string, 0, len(h.levels))
	for i, d := range h.levels {
		b := components.NewButton(d.String(), buttonWidth)
		b.Color = theme.DifficultyColor(d)
		b.Focused = i == h.menu.Selected
		buttons = append(buttons, b.View())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	quit := theme.Faded.Render("Quit")
	if h.menu.Selected == len(h.levels) {
		quit = theme.Selected.Render("▸ Quit")
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(row + "\n\n" + quit)
}

// renderOfflineBanner warns that no LLM API key is configured.
func renderOfflineBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ No LLM API key set: using offline questions (see probace --help)")
}
