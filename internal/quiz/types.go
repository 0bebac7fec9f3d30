package quiz

import (
	"errors"

	"github.com/abhisek/tidenav/internal/archetype"
	"github.com/abhisek/tidenav/internal/trait"
)

// Phase is the top-level stage of a quiz attempt.
type Phase int

const (
	PhaseIntro     Phase = iota // Waiting for Begin
	PhaseQuestions              // Accepting answers
	PhaseResult                 // Archetype resolved; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseQuestions:
		return "questions"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Option is one selectable answer to a question.
type Option struct {
	Label     string
	Value     trait.Tag
	Direction int // degrees in [0,360)
}

// Question is a scenario question. IDs are 1-based and follow presentation order.
type Question struct {
	ID       int
	Prompt   string
	Subtitle string
	Options  []Option
}

// NavigationSignal is emitted after every answer for the presentation layer.
type NavigationSignal struct {
	Rotation int
}

// Step is the outcome of a successful answer submission.
type Step struct {
	Signal NavigationSignal

	// Done is true when this answer completed the quiz; Result is then set.
	Done   bool
	Result archetype.Result
}

// State is a read-only copy of the engine's progress.
type State struct {
	Phase   Phase
	Index   int
	Answers []trait.Tag
}

// Resolver classifies a completed answer sequence.
type Resolver interface {
	Resolve(answers []trait.Tag) archetype.Result
}

var (
	// ErrNotAnswering is returned when an answer arrives outside the questions phase.
	ErrNotAnswering = errors.New("quiz: not accepting answers")

	// ErrNoSuchOption is returned by Choose for an option index the active question lacks.
	ErrNoSuchOption = errors.New("quiz: no such option")
)
