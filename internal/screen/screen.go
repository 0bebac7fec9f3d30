package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tidenav/internal/ui/layout"
	"github.com/abhisek/tidenav/internal/ui/ocean"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SeaProvider is an optional interface for screens that drive the
// background sea state.
type SeaProvider interface {
	Intensity() ocean.Intensity
}

// StatusProvider is an optional interface for screens that show a
// status string on the right of the header.
type StatusProvider interface {
	Status() string
}

// Factory builds the next screen for a quiz attempt.
type Factory func() Screen
