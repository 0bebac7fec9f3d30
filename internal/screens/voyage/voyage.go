// Package voyage implements the questions screen: one scenario at a time,
// a compass that swings toward each chosen direction, and a short settle
// pause before the next question appears.
package voyage

import (
	"fmt"
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

// Options configures the pacing of the questions screen.
type Options struct {
	// SettleDelay is how long the chosen answer stays on screen before
	// the next question. Input is ignored meanwhile.
	SettleDelay time.Duration
	// RevealDelay is the pause between the final settle and the result.
	RevealDelay time.Duration

	Logger *zap.Logger
}

// DefaultOptions returns the standard pacing.
func DefaultOptions() Options {
	return Options{
		SettleDelay: 800 * time.Millisecond,
		RevealDelay: 500 * time.Millisecond,
	}
}

type settledMsg struct{}

type revealMsg struct{}

// VoyageScreen presents the active question of a begun engine.
type VoyageScreen struct {
	engine *quiz.Engine
	next   func(*quiz.Engine) screen.Screen
	opts   Options
	log    *zap.Logger

	question quiz.Question
	options  components.OptionList
	rotation int

	settling  bool
	revealing bool
	done      bool
}

var _ screen.Screen = (*VoyageScreen)(nil)
var _ screen.KeyHintProvider = (*VoyageScreen)(nil)
var _ screen.SeaProvider = (*VoyageScreen)(nil)
var _ screen.StatusProvider = (*VoyageScreen)(nil)

// New creates the questions screen. next builds the result screen once
// the engine has resolved an archetype.
func New(engine *quiz.Engine, next func(*quiz.Engine) screen.Screen, opts Options) *VoyageScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &VoyageScreen{
		engine: engine,
		next:   next,
		opts:   opts,
		log:    log.With(zap.String("attempt", engine.AttemptID())),
	}
	s.load()
	return s
}

// load shows the engine's active question, if any.
func (s *VoyageScreen) load() bool {
	q, ok := s.engine.CurrentQuestion()
	if !ok {
		return false
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	s.question = q
	s.options = components.NewOptionList(labels)
	return true
}

func (s *VoyageScreen) Title() string {
	return "Navigation"
}

// Status shows the 1-based position of the question on screen.
func (s *VoyageScreen) Status() string {
	return fmt.Sprintf("Q %d/%d", s.question.ID, s.engine.Total())
}

func (s *VoyageScreen) Intensity() ocean.Intensity {
	return ocean.Derive(s.engine.Phase(), s.engine.Index())
}

func (s *VoyageScreen) KeyHints() []layout.KeyHint {
	if s.settling || s.revealing {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: fmt.Sprintf("1-%d", len(s.question.Options)), Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Rotation returns the compass heading in degrees.
func (s *VoyageScreen) Rotation() int {
	return s.rotation
}

func (s *VoyageScreen) Init() tea.Cmd {
	if s.engine.Phase() != quiz.PhaseQuestions {
		s.log.Warn("questions screen opened outside questions phase",
			zap.Stringer("phase", s.engine.Phase()))
	}
	return nil
}

func (s *VoyageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if s.settling || s.revealing || s.done {
			return s, nil
		}
		switch {
		case key.Matches(msg, keys.Default.Up):
			s.options = s.options.Up()
		case key.Matches(msg, keys.Default.Down):
			s.options = s.options.Down()
		case key.Matches(msg, keys.Default.Select):
			return s, s.choose(s.options.Selected)
		default:
			if i, ok := keys.Digit(msg.String()); ok && i < len(s.question.Options) {
				s.options.Selected = i
				return s, s.choose(i)
			}
		}
		return s, nil

	case settledMsg:
		s.settling = false
		if s.engine.Phase() == quiz.PhaseResult {
			s.rotation = 0
			s.revealing = true
			return s, tea.Tick(s.opts.RevealDelay, func(time.Time) tea.Msg {
				return revealMsg{}
			})
		}
		s.load()
		return s, nil

	case revealMsg:
		if s.done {
			return s, nil
		}
		s.revealing = false
		s.done = true
		return s, router.To(s.next(s.engine))
	}

	return s, nil
}

func (s *VoyageScreen) choose(i int) tea.Cmd {
	step, err := s.engine.Choose(i)
	if err != nil {
		s.log.Warn("answer rejected", zap.Int("option", i), zap.Error(err))
		return nil
	}

	s.options.Chosen = i
	s.rotation = step.Signal.Rotation
	s.settling = true
	s.log.Debug("answer recorded",
		zap.Int("question", s.question.ID),
		zap.String("value", string(s.question.Options[i].Value)),
		zap.Int("rotation", step.Signal.Rotation))
	if step.Done {
		s.log.Info("archetype resolved", zap.String("title", step.Result.Title))
	}

	return tea.Tick(s.opts.SettleDelay, func(time.Time) tea.Msg {
		return settledMsg{}
	})
}

func (s *VoyageScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	compass := components.Compass{
		Rotation: s.rotation,
		Visible:  true,
	}

	sections := []string{
		components.Pips(s.engine.Total(), s.question.ID-1),
		"",
		compass.View(),
		"",
		components.Centered(theme.Title, s.question.Prompt, cw, cw),
	}
	if s.question.Subtitle != "" {
		sections = append(sections, components.Centered(theme.Hint, s.question.Subtitle, cw, cw))
	}
	sections = append(sections, "", s.options.View())

	if s.revealing {
		sections = append(sections, theme.Prophecy.Render("The tide is turning..."))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
