package archetype

import (
	"github.com/abhisek/tidenav/internal/dataset"
	"github.com/abhisek/tidenav/internal/trait"
)

// defaultResolver is built from the embedded dataset by init().
var defaultResolver *Resolver

func init() {
	defaultResolver = FromDocument(dataset.Default())
}

// Default returns the resolver for the built-in archetype rules.
func Default() *Resolver {
	return defaultResolver
}

// Resolve classifies answers with the built-in rules.
func Resolve(answers []trait.Tag) Result {
	return defaultResolver.Resolve(answers)
}

// FromDocument builds a Resolver from a validated dataset.
func FromDocument(d *dataset.Document) *Resolver {
	rules := make([]Rule, 0, len(d.Archetypes))
	for _, a := range d.Archetypes {
		var when Predicate
		if len(a.All) > 0 {
			when = AllOf(a.All...)
		} else {
			when = AnyOf(a.Any...)
		}
		rules = append(rules, Rule{
			Name:   a.Name,
			When:   when,
			Result: fromDoc(a.Result),
		})
	}
	return NewResolver(d.Traits(), rules, fromDoc(d.Fallback))
}

func fromDoc(r dataset.ResultDoc) Result {
	return Result{
		Title:       r.Title,
		Symbol:      r.Symbol,
		Description: r.Description,
		Guidance:    r.Guidance,
		Direction:   r.Direction,
	}
}
