package ocean

import (
	"math"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tidenav/internal/quiz"
	"github.com/abhisek/tidenav/internal/ui/theme"
)

// Intensity is the sea state shown behind the quiz.
type Intensity int

const (
	Calm Intensity = iota
	Moderate
	Stormy
)

// StormThreshold is the number of recorded answers after which the sea turns stormy.
const StormThreshold = 3

func (i Intensity) String() string {
	switch i {
	case Moderate:
		return "moderate"
	case Stormy:
		return "stormy"
	default:
		return "calm"
	}
}

// Derive computes the sea state from the engine's phase and answer count.
func Derive(phase quiz.Phase, answered int) Intensity {
	switch phase {
	case quiz.PhaseQuestions:
		if answered >= StormThreshold {
			return Stormy
		}
		return Moderate
	default:
		return Calm
	}
}

// Interval returns the animation frame interval for the sea state.
func (i Intensity) Interval() time.Duration {
	switch i {
	case Moderate:
		return 180 * time.Millisecond
	case Stormy:
		return 90 * time.Millisecond
	default:
		return 300 * time.Millisecond
	}
}

func (i Intensity) amplitude() float64 {
	switch i {
	case Moderate:
		return 1
	case Stormy:
		return 1.8
	default:
		return 0.5
	}
}

// waveGlyphs are ordered from trough to crest.
var waveGlyphs = []rune{'_', '.', '-', '~', '^'}

// Waves renders a band of rows animated by frame.
func Waves(i Intensity, frame, width, rows int) string {
	if width <= 0 || rows <= 0 {
		return ""
	}

	amp := i.amplitude()
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Foam),
		lipgloss.NewStyle().Foreground(theme.Secondary),
		lipgloss.NewStyle().Foreground(theme.Deep),
	}

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		phase := float64(frame)*0.35 + float64(r)*1.3
		for x := 0; x < width; x++ {
			v := math.Sin(float64(x)*0.22+phase) * amp
			if i == Stormy {
				v += math.Sin(float64(x)*0.61-phase*1.7) * 0.6
			}
			// Map [-2.4, 2.4] onto the glyph ramp.
			idx := int((v + 2.4) / 4.8 * float64(len(waveGlyphs)))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(waveGlyphs) {
				idx = len(waveGlyphs) - 1
			}
			b.WriteRune(waveGlyphs[idx])
		}
		lines[r] = colors[r%len(colors)].Render(b.String())
	}
	return strings.Join(lines, "\n")
}
