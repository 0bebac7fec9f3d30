package intro

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tidenav/internal/quiz"
	"github.com/abhisek/tidenav/internal/router"
	"github.com/abhisek/tidenav/internal/screen"
	"github.com/abhisek/tidenav/internal/ui/components"
	"github.com/abhisek/tidenav/internal/ui/keys"
	"github.com/abhisek/tidenav/internal/ui/layout"
	"github.com/abhisek/tidenav/internal/ui/ocean"
	"github.com/abhisek/tidenav/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

// Intro sub-steps. These are presentation only; the engine stays in
// PhaseIntro until Begin fires at the end of the sequence.
const (
	stepTitle    = iota // Title card with the begin button
	stepCompass         // Compass appears, pulsing
	stepProphecy        // Prophecy line under the compass
)

const prophecy = `"The tide is shifting. Choose your direction wisely."`

// Options configures the intro sequence.
type Options struct {
	// ProphecyAfter is the delay from begin until the prophecy line shows.
	ProphecyAfter time.Duration
	// BeginAfter is the delay from begin until the first question.
	BeginAfter time.Duration
	// Skip begins the quiz as soon as the screen starts.
	Skip bool

	Logger *zap.Logger
}

// DefaultOptions returns the standard intro timing.
func DefaultOptions() Options {
	return Options{
		ProphecyAfter: 1500 * time.Millisecond,
		BeginAfter:    3500 * time.Millisecond,
	}
}

type tickMsg time.Time

// IntroScreen shows the title card and the compass reveal before the
// first question.
type IntroScreen struct {
	engine *quiz.Engine
	next   func(*quiz.Engine) screen.Screen
	opts   Options
	log    *zap.Logger

	step         int
	started      bool
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)
var _ screen.SeaProvider = (*IntroScreen)(nil)

// New creates an IntroScreen for a fresh attempt. next builds the
// questions screen once the engine has begun.
func New(engine *quiz.Engine, next func(*quiz.Engine) screen.Screen, opts Options) *IntroScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &IntroScreen{
		engine: engine,
		next:   next,
		opts:   opts,
		log:    log.With(zap.String("attempt", engine.AttemptID())),
	}
}

func (s *IntroScreen) Title() string {
	return ""
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	if s.started {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin Navigation"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Intensity() ocean.Intensity {
	return ocean.Derive(s.engine.Phase(), s.engine.Index())
}

func (s *IntroScreen) Init() tea.Cmd {
	if s.opts.Skip {
		s.started = true
		return s.transition()
	}
	return tick()
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.transitioned {
			return s, nil
		}
		s.tickCount++
		if !s.started {
			return s, tick()
		}

		s.elapsed += tickInterval
		if s.elapsed >= s.opts.ProphecyAfter && s.step < stepProphecy {
			s.step = stepProphecy
		}
		if s.elapsed >= s.opts.BeginAfter {
			return s, s.transition()
		}
		return s, tick()

	case tea.KeyPressMsg:
		if !s.started && key.Matches(msg, keys.Default.Select) {
			s.started = true
			s.step = stepCompass
			s.log.Debug("intro started")
		}
		return s, nil
	}

	return s, nil
}

func (s *IntroScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true

	if !s.engine.Begin() {
		s.log.Warn("begin ignored", zap.Stringer("phase", s.engine.Phase()))
	} else {
		s.log.Info("quiz begun", zap.Int("questions", s.engine.Total()))
	}
	return router.To(s.next(s.engine))
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	if s.step == stepTitle {
		cw := components.ContentWidth(width)
		sections = append(sections,
			theme.Hint.Render("~ Let the Tide Read Your Course ~"),
			"",
			RenderBanner(width),
			"",
			components.Centered(theme.Body.Foreground(theme.TextDim),
				"The ocean knows where you're going.\nWill you listen?", cw, cw),
			"",
			components.NewButton("BEGIN NAVIGATION", true).View(),
		)
	} else {
		compass := components.Compass{
			Rotation: 45,
			Visible:  true,
			Pulsing:  true,
			Frame:    s.tickCount,
		}
		sections = append(sections, compass.View())

		if s.step >= stepProphecy {
			sections = append(sections, "", theme.Prophecy.Render(prophecy))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
