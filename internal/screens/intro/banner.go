package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tidenav/internal/ui/theme"
)

const bannerArt = `
 ╔╦╗╦╔╦╗╔═╗  ╔╗╔╔═╗╦  ╦╦╔═╗╔═╗╔╦╗╔═╗╦═╗
  ║ ║ ║║║╣   ║║║╠═╣╚╗╔╝║║ ╦╠═╣ ║ ║ ║╠╦╝
  ╩ ╩═╩╝╚═╝  ╝╚╝╩ ╩ ╚╝ ╩╚═╝╩ ╩ ╩ ╚═╝╩╚═`

const bannerCompact = "T H E   T I D E\nN A V I G A T O R"

// RenderBanner returns the title banner in the primary color.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
