package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

const bannerArt = `
╔═╗╦═╗╔═╗╔╗ ╔═╗╔╗ ╦╦  ╦╔╦╗╦ ╦  ╔═╗╔═╗╔═╗
╠═╝╠╦╝║ ║╠╩╗╠═╣╠╩╗║║  ║ ║ ╚╦╝  ╠═╣║  ║╣
╩  ╩╚═╚═╝╚═╝╩ ╩╚═╝╩╩═╝╩ ╩  ╩   ╩ ╩╚═╝╚═╝`

const bannerCompact = "P R O B A B I L I T Y   A C E"

// RenderBanner returns the title banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
