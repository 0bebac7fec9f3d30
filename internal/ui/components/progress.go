package components

import (
	"strings"

	"github.com/abhisek/tidenav/internal/ui/theme"
)

// Pips renders one marker per question: answered, current and pending.
func Pips(total, current int) string {
	parts := make([]string, 0, total)
	for i := 0; i < total; i++ {
		switch {
		case i < current:
			parts = append(parts, theme.PipDone.Render("━━━"))
		case i == current:
			parts = append(parts, theme.PipCurrent.Render("━━━"))
		default:
			parts = append(parts, theme.PipPending.Render("───"))
		}
	}
	return strings.Join(parts, " ")
}
