package app

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tidenav/internal/config"
	"github.com/abhisek/tidenav/internal/quiz"
	"github.com/abhisek/tidenav/internal/router"
	"github.com/abhisek/tidenav/internal/screen"
	"github.com/abhisek/tidenav/internal/screens/intro"
	"github.com/abhisek/tidenav/internal/screens/result"
	"github.com/abhisek/tidenav/internal/screens/voyage"
	"github.com/abhisek/tidenav/internal/ui/keys"
	"github.com/abhisek/tidenav/internal/ui/layout"
	"github.com/abhisek/tidenav/internal/ui/ocean"
)

// Options holds dependencies for the app.
type Options struct {
	Config config.Config
	Logger *zap.Logger
}

// bandRows is the height of the sea band above the footer.
const bandRows = 2

// waveMsg advances the sea animation by one frame.
type waveMsg time.Time

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
	frame  int
}

// flow wires the screens of one attempt together. Each screen gets a
// factory for the next one so screens never import each other.
type flow struct {
	cfg config.Config
	log *zap.Logger
}

func (f flow) intro() screen.Screen {
	e := quiz.NewDefault()
	f.log.Debug("new attempt", zap.String("attempt", e.AttemptID()))

	opts := intro.DefaultOptions()
	opts.Skip = f.cfg.SkipIntro
	opts.Logger = f.log
	return intro.New(e, f.questions, opts)
}

func (f flow) questions(e *quiz.Engine) screen.Screen {
	opts := voyage.DefaultOptions()
	opts.SettleDelay = f.cfg.SettleDelay
	opts.RevealDelay = f.cfg.RevealDelay
	opts.Logger = f.log
	return voyage.New(e, f.result, opts)
}

func (f flow) result(e *quiz.Engine) screen.Screen {
	return result.New(e, f.intro, f.log)
}

// newAppModel creates a new AppModel on the intro screen of a fresh attempt.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	f := flow{cfg: opts.Config, log: log}
	return AppModel{
		router: router.New(f.intro()),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.waveTick())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case waveMsg:
		m.frame++
		return m, m.waveTick()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Default.Quit) {
			m.log.Info("quit", zap.String("screen", m.router.Active().Title()))
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// intensity returns the sea state of the active screen.
func (m AppModel) intensity() ocean.Intensity {
	if sp, ok := m.router.Active().(screen.SeaProvider); ok {
		return sp.Intensity()
	}
	return ocean.Calm
}

func (m AppModel) waveTick() tea.Cmd {
	return tea.Tick(m.intensity().Interval(), func(t time.Time) tea.Msg {
		return waveMsg(t)
	})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	band := ocean.Waves(m.intensity(), m.frame, m.width, bandRows)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - lipgloss.Height(band)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, band, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
