package intro

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tidenav/internal/quiz"
	"github.com/abhisek/tidenav/internal/router"
	"github.com/abhisek/tidenav/internal/screen"
	"github.com/abhisek/tidenav/internal/ui/ocean"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "questions" }
func (s *stubScreen) Title() string                           { return "Questions" }

func newTestIntro(opts Options) (*IntroScreen, *quiz.Engine, *int) {
	e := quiz.NewDefault()
	calls := 0
	next := func(got *quiz.Engine) screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(e, next, opts), e, &calls
}

func sendTicks(s *IntroScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	return cmd
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestTitleCardUntilBegin(t *testing.T) {
	s, e, calls := newTestIntro(DefaultOptions())

	// Ticks before the user begins only animate.
	sendTicks(s, 100)
	if s.started || s.elapsed != 0 {
		t.Error("sequence should not advance before begin")
	}
	if *calls != 0 || e.Phase() != quiz.PhaseIntro {
		t.Error("engine should stay in intro without a begin trigger")
	}
	if !strings.Contains(s.View(80, 24), "The ocean knows") {
		t.Error("title card should be visible")
	}
}

func TestSequenceSteps(t *testing.T) {
	s, e, calls := newTestIntro(DefaultOptions())
	s.Update(enter())
	if s.step != stepCompass {
		t.Fatalf("expected compass step after begin, got %d", s.step)
	}
	if strings.Contains(s.View(80, 24), "tide is shifting") {
		t.Error("prophecy should not show yet")
	}

	sendTicks(s, 15) // 1.5s
	if s.step != stepProphecy {
		t.Errorf("expected prophecy step at 1.5s, got %d", s.step)
	}
	if !strings.Contains(s.View(80, 24), "tide is shifting") {
		t.Error("prophecy should show after 1.5s")
	}
	if e.Phase() != quiz.PhaseIntro {
		t.Error("engine should still be in intro at 1.5s")
	}

	cmd := sendTicks(s, 20) // 3.5s
	if cmd == nil {
		t.Fatal("expected transition command at 3.5s")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if e.Phase() != quiz.PhaseQuestions {
		t.Errorf("engine phase = %s, want questions", e.Phase())
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestTransitionOnce(t *testing.T) {
	s, _, calls := newTestIntro(DefaultOptions())
	s.Update(enter())
	sendTicks(s, 35)

	if cmd := sendTicks(s, 10); cmd != nil {
		t.Error("ticks after the transition should stop")
	}
	s.Update(enter())
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestSkipIntro(t *testing.T) {
	opts := DefaultOptions()
	opts.Skip = true
	s, e, calls := newTestIntro(opts)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected immediate transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if e.Phase() != quiz.PhaseQuestions || *calls != 1 {
		t.Error("skip should begin the engine and build the next screen")
	}
}

func TestIntensityCalm(t *testing.T) {
	s, _, _ := newTestIntro(DefaultOptions())
	if s.Intensity() != ocean.Calm {
		t.Errorf("intro intensity = %s, want calm", s.Intensity())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s, _, _ := newTestIntro(DefaultOptions())
	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if s.started {
		t.Error("only the select binding should begin the sequence")
	}
}
