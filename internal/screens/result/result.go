package result

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tidenav/internal/archetype"
	"github.com/abhisek/tidenav/internal/quiz"
	"github.com/abhisek/tidenav/internal/router"
	"github.com/abhisek/tidenav/internal/screen"
	"github.com/abhisek/tidenav/internal/ui/components"
	"github.com/abhisek/tidenav/internal/ui/keys"
	"github.com/abhisek/tidenav/internal/ui/layout"
	"github.com/abhisek/tidenav/internal/ui/ocean"
	"github.com/abhisek/tidenav/internal/ui/theme"
)

// ResultScreen shows the resolved archetype of a completed attempt.
type ResultScreen struct {
	engine  *quiz.Engine
	result  archetype.Result
	restart screen.Factory
	log     *zap.Logger

	restarted bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.SeaProvider = (*ResultScreen)(nil)

// New creates the result screen for a completed engine. restart builds the
// first screen of a fresh attempt.
func New(engine *quiz.Engine, restart screen.Factory, log *zap.Logger) *ResultScreen {
	if log == nil {
		log = zap.NewNop()
	}
	res, ok := engine.Result()
	if !ok {
		log.Warn("result screen opened before completion", zap.Stringer("phase", engine.Phase()))
	}
	return &ResultScreen{
		engine:  engine,
		result:  res,
		restart: restart,
		log:     log.With(zap.String("attempt", engine.AttemptID())),
	}
}

func (s *ResultScreen) Title() string {
	return "Your Navigation Result"
}

func (s *ResultScreen) Intensity() ocean.Intensity {
	return ocean.Derive(s.engine.Phase(), s.engine.Index())
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Navigate Again"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Result returns the archetype shown on screen.
func (s *ResultScreen) Result() archetype.Result {
	return s.result
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		if s.restarted || !key.Matches(msg, keys.Default.Select) {
			return s, nil
		}
		s.restarted = true
		s.log.Info("navigating again")
		return s, router.To(s.restart())
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	symbol := lipgloss.NewStyle().Foreground(theme.Primary).Render(s.result.Symbol)

	guidance := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("The Tide Speaks"),
		"",
		theme.Body.Width(cw-4).Render(s.result.Guidance),
	)

	sections := []string{
		symbol,
		"",
		theme.Subtitle.Render("Your Navigation Result"),
		theme.Title.Render(s.result.Title),
		"",
		components.Centered(theme.Body, s.result.Description, cw, cw),
		"",
		components.Card(guidance, cw),
		"",
		theme.Prophecy.Render("⟶ " + s.result.Direction),
		"",
		components.NewButton("NAVIGATE AGAIN", true).View(),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
