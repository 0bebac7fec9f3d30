package quiz

import "github.com/abhisek/tidenav/internal/dataset"

// questions is the built-in question list, set by init().
var questions []Question

func init() {
	questions = FromDocument(dataset.Default())
}

// Questions returns a copy of the built-in questions in presentation order.
func Questions() []Question {
	return cloneQuestions(questions)
}

// FromDocument converts dataset questions into engine questions.
func FromDocument(d *dataset.Document) []Question {
	out := make([]Question, 0, len(d.Questions))
	for _, qd := range d.Questions {
		opts := make([]Option, 0, len(qd.Options))
		for _, od := range qd.Options {
			opts = append(opts, Option{
				Label:     od.Label,
				Value:     od.Value,
				Direction: od.Direction,
			})
		}
		out = append(out, Question{
			ID:       qd.ID,
			Prompt:   qd.Prompt,
			Subtitle: qd.Subtitle,
			Options:  opts,
		})
	}
	return out
}
