package dataset

import "github.com/abhisek/tidenav/internal/trait"

// Document is the decoded quiz dataset: the ordered questions, the ordered
// archetype rules and the fallback result.
type Document struct {
	Questions  []QuestionDoc  `yaml:"questions"`
	Archetypes []ArchetypeDoc `yaml:"archetypes"`
	Fallback   ResultDoc      `yaml:"fallback"`
}

// QuestionDoc is one scenario question.
type QuestionDoc struct {
	ID       int         `yaml:"id"`
	Prompt   string      `yaml:"prompt"`
	Subtitle string      `yaml:"subtitle"`
	Options  []OptionDoc `yaml:"options"`
}

// OptionDoc is one selectable answer.
type OptionDoc struct {
	Label     string    `yaml:"label"`
	Value     trait.Tag `yaml:"value"`
	Direction int       `yaml:"direction"`
}

// ArchetypeDoc is one classification rule. Exactly one of All or Any is set.
type ArchetypeDoc struct {
	Name   string      `yaml:"name"`
	All    []trait.Tag `yaml:"all"`
	Any    []trait.Tag `yaml:"any"`
	Result ResultDoc   `yaml:"result"`
}

// ResultDoc is the display text of an archetype.
type ResultDoc struct {
	Title       string `yaml:"title"`
	Symbol      string `yaml:"symbol"`
	Description string `yaml:"description"`
	Guidance    string `yaml:"guidance"`
	Direction   string `yaml:"direction"`
}

// Traits returns every trait tag offered by some question option.
func (d *Document) Traits() trait.Set {
	s := make(trait.Set)
	for _, q := range d.Questions {
		for _, o := range q.Options {
			s[o.Value] = struct{}{}
		}
	}
	return s
}
