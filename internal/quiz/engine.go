package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/tidenav/internal/archetype"
	"github.com/abhisek/tidenav/internal/trait"
)

// Engine drives one quiz attempt from intro to result.
//
// An Engine is never reset. Restarting the quiz means discarding it and
// calling New again. It is not safe for concurrent use; callers submit one
// event at a time.
type Engine struct {
	attemptID string
	questions []Question
	resolver  Resolver

	phase   Phase
	index   int
	answers []trait.Tag
	result  archetype.Result
}

// New creates an Engine in the intro phase over the given questions.
func New(questions []Question, resolver Resolver) *Engine {
	return &Engine{
		attemptID: uuid.New().String(),
		questions: cloneQuestions(questions),
		resolver:  resolver,
		phase:     PhaseIntro,
		answers:   make([]trait.Tag, 0, len(questions)),
	}
}

// NewDefault creates an Engine over the built-in questions and archetypes.
func NewDefault() *Engine {
	return New(Questions(), archetype.Default())
}

// Begin moves the engine from intro to the first question.
// It reports false and changes nothing when called in any other phase.
func (e *Engine) Begin() bool {
	if e.phase != PhaseIntro {
		return false
	}
	e.phase = PhaseQuestions
	e.index = 0
	return true
}

// SubmitAnswer records tag for the active question and advances.
//
// The tag is not checked against the active question's options; whatever the
// caller passes is appended. When this answer completes the sequence the
// result is resolved in the same call and the engine enters PhaseResult.
func (e *Engine) SubmitAnswer(tag trait.Tag, direction int) (Step, error) {
	if e.phase != PhaseQuestions || e.index >= len(e.questions) {
		return Step{}, fmt.Errorf("submit %q in phase %s at %d/%d: %w",
			tag, e.phase, e.index, len(e.questions), ErrNotAnswering)
	}

	e.answers = append(e.answers, tag)
	step := Step{Signal: NavigationSignal{Rotation: direction}}
	e.index++

	if e.index == len(e.questions) {
		e.result = e.resolver.Resolve(e.Answers())
		e.phase = PhaseResult
		step.Done = true
		step.Result = e.result
	}
	return step, nil
}

// Choose submits the active question's option at optionIndex.
func (e *Engine) Choose(optionIndex int) (Step, error) {
	q, ok := e.CurrentQuestion()
	if !ok {
		return Step{}, fmt.Errorf("choose option %d in phase %s: %w", optionIndex, e.phase, ErrNotAnswering)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Step{}, fmt.Errorf("question %d has %d options, got %d: %w",
			q.ID, len(q.Options), optionIndex, ErrNoSuchOption)
	}
	opt := q.Options[optionIndex]
	return e.SubmitAnswer(opt.Value, opt.Direction)
}

// CurrentQuestion returns the active question.
// Returns false outside PhaseQuestions or when the index is out of range.
func (e *Engine) CurrentQuestion() (Question, bool) {
	if e.phase != PhaseQuestions || e.index < 0 || e.index >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.index], true
}

// Result returns the resolved archetype once the engine is in PhaseResult.
func (e *Engine) Result() (archetype.Result, bool) {
	if e.phase != PhaseResult {
		return archetype.Result{}, false
	}
	return e.result, true
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Index returns the number of questions answered so far.
func (e *Engine) Index() int { return e.index }

// Total returns the number of questions in the attempt.
func (e *Engine) Total() int { return len(e.questions) }

// AttemptID identifies this attempt in logs.
func (e *Engine) AttemptID() string { return e.attemptID }

// Answers returns a copy of the recorded answers.
func (e *Engine) Answers() []trait.Tag {
	return append([]trait.Tag(nil), e.answers...)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	return State{
		Phase:   e.phase,
		Index:   e.index,
		Answers: e.Answers(),
	}
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}
