package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tidenav/internal/ui/theme"
)

var headings = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var needles = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Normalize folds any angle into [0,360).
func Normalize(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Heading returns the nearest 8-point compass heading for deg.
func Heading(deg int) string {
	return headings[octant(deg)]
}

func octant(deg int) int {
	return ((Normalize(deg) + 22) / 45) % 8
}

// Compass draws a compass rose whose needle points at Rotation degrees.
type Compass struct {
	Rotation int
	Visible  bool
	Pulsing  bool
	Frame    int
}

// View renders the compass, or an empty string when hidden.
func (c Compass) View() string {
	if !c.Visible {
		return ""
	}

	rim := theme.Primary
	if c.Pulsing && c.Frame%8 >= 4 {
		rim = theme.Accent
	}
	cardinal := lipgloss.NewStyle().Foreground(theme.TextDim)
	needle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(needles[octant(c.Rotation)])

	face := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rim).
		Padding(0, 2).
		Render(needle)

	faceLines := strings.Split(face, "\n")
	mid := len(faceLines) / 2
	for i := range faceLines {
		if i == mid {
			faceLines[i] = cardinal.Render("W ") + faceLines[i] + cardinal.Render(" E")
		} else {
			faceLines[i] = "  " + faceLines[i] + "  "
		}
	}

	rose := lipgloss.JoinVertical(lipgloss.Center,
		cardinal.Render("N"),
		strings.Join(faceLines, "\n"),
		cardinal.Render("S"),
	)

	label := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("%03d° %s", Normalize(c.Rotation), Heading(c.Rotation)))

	return lipgloss.JoinVertical(lipgloss.Center, rose, label)
}
