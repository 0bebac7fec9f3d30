package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: night sea with a brass compass
var (
	Primary   = lipgloss.Color("#D4A84B") // Compass Gold
	Secondary = lipgloss.Color("#2DD4BF") // Sea Glass
	Accent    = lipgloss.Color("#F5D08A") // Pale Brass
	Deep      = lipgloss.Color("#1E40AF") // Deep Water
	Foam      = lipgloss.Color("#BAE6FD") // Foam
	Text      = lipgloss.Color("#E2E8F0") // Moonlight
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#020617") // Midnight
	BgCard    = lipgloss.Color("#0F1E33") // Harbor Navy
	Border    = lipgloss.Color("#1E3A5F") // Rope
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Prophecy = lipgloss.NewStyle().
			Foreground(Accent).
			Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)
)

// Option states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Primary).
		Background(BgCard).
		Bold(true)

	Faded = lipgloss.NewStyle().
		Foreground(TextDim).
		Faint(true)
)

// Progress pips
var (
	PipDone = lipgloss.NewStyle().
		Foreground(Primary)

	PipCurrent = lipgloss.NewStyle().
			Foreground(Accent)

	PipPending = lipgloss.NewStyle().
			Foreground(Border)
)

// Buttons
var (
	ButtonActive = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Bold(true).
			Padding(0, 3)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 3)
)
