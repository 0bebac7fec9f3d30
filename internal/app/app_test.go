package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/abhisek/tidenav/internal/config"
	"github.com/abhisek/tidenav/internal/quiz"
	"github.com/abhisek/tidenav/internal/router"
	"github.com/abhisek/tidenav/internal/screens/intro"
	"github.com/abhisek/tidenav/internal/screens/result"
	"github.com/abhisek/tidenav/internal/screens/voyage"
	"github.com/abhisek/tidenav/internal/ui/ocean"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.SkipIntro = true
	cfg.SettleDelay = 0
	cfg.RevealDelay = 0
	return cfg
}

// drive feeds msg to the model and keeps running the returned commands
// until one yields nothing or a message the screens do not emit.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		updated, cmd := m.Update(msg)
		m = updated.(AppModel)
		if cmd == nil {
			return m
		}
		msg = cmd()
	}
	return m
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestStartsOnIntro(t *testing.T) {
	m := newAppModel(Options{Config: config.DefaultConfig()})
	if _, ok := m.router.Active().(*intro.IntroScreen); !ok {
		t.Fatalf("expected intro screen, got %T", m.router.Active())
	}
	if m.intensity() != ocean.Calm {
		t.Errorf("intensity = %s, want calm", m.intensity())
	}
}

func TestFullAttempt(t *testing.T) {
	m := newAppModel(Options{Config: fastConfig()})

	m = drive(t, m, m.router.Active().Init()())
	v, ok := m.router.Active().(*voyage.VoyageScreen)
	if !ok {
		t.Fatalf("expected questions screen, got %T", m.router.Active())
	}
	if v.Status() != "Q 1/5" {
		t.Errorf("status = %q", v.Status())
	}

	// freedom path: intuition, freedom, discovery, hopeful, creativity
	for _, r := range []rune{'2', '4', '2', '3', '4'} {
		m = drive(t, m, press(r))
	}

	res, ok := m.router.Active().(*result.ResultScreen)
	if !ok {
		t.Fatalf("expected result screen, got %T", m.router.Active())
	}
	if got := res.Result().Title; got != "The Voyager" {
		t.Errorf("result = %q, want The Voyager", got)
	}
	if m.intensity() != ocean.Calm {
		t.Errorf("result intensity = %s, want calm", m.intensity())
	}

	// Navigate Again starts a fresh attempt, which skips straight to Q1.
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	next, ok := m.router.Active().(*voyage.VoyageScreen)
	if !ok {
		t.Fatalf("expected a fresh questions screen, got %T", m.router.Active())
	}
	if next.Status() != "Q 1/5" || next.Intensity() != ocean.Moderate {
		t.Error("restart should begin a new attempt at the first question")
	}
}

func TestQuit(t *testing.T) {
	m := newAppModel(Options{Config: config.DefaultConfig()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}

	// Plain "c" reaches the screen instead of quitting.
	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("c without ctrl should not quit")
		}
	}
}

func TestWaveFrames(t *testing.T) {
	m := newAppModel(Options{Config: config.DefaultConfig()})
	updated, cmd := m.Update(waveMsg{})
	if updated.(AppModel).frame != 1 {
		t.Error("wave tick should advance the frame")
	}
	if cmd == nil {
		t.Error("wave tick should schedule the next frame")
	}
}

func TestViewSizes(t *testing.T) {
	m := newAppModel(Options{Config: config.DefaultConfig()})
	if v := m.View(); !v.AltScreen {
		t.Error("view should use the alt screen")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)
	_ = m.View()

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	_ = updated.(AppModel).View()
}

func TestFlowFactoriesShareConfig(t *testing.T) {
	f := flow{cfg: fastConfig(), log: zap.NewNop()}

	s := f.intro()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("skip intro should transition on init")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	v := msg.Screen.(*voyage.VoyageScreen)
	if v.Intensity() != ocean.Derive(quiz.PhaseQuestions, 0) {
		t.Error("questions screen should see a begun engine")
	}
}
