package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tidenav/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centred text blocks.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 8
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a gold rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// Centered renders text wrapped to cw and centred within width.
func Centered(style lipgloss.Style, text string, cw, width int) string {
	block := style.Width(cw).Align(lipgloss.Center).Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
