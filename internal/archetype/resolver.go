package archetype

import "github.com/abhisek/tidenav/internal/trait"

// Resolver maps answer sequences to archetypes using ordered rules.
// A Resolver is immutable after construction and safe to share.
type Resolver struct {
	known    trait.Set
	rules    []Rule
	fallback Result
}

// NewResolver creates a Resolver. Rules are evaluated in the given order;
// tags outside known are ignored when tallying.
func NewResolver(known trait.Set, rules []Rule, fallback Result) *Resolver {
	k := make(trait.Set, len(known))
	for t := range known {
		k[t] = struct{}{}
	}
	return &Resolver{
		known:    k,
		rules:    append([]Rule(nil), rules...),
		fallback: fallback,
	}
}

// Resolve returns the result of the first matching rule, or the fallback.
func (r *Resolver) Resolve(answers []trait.Tag) Result {
	if rule, ok := r.Match(answers); ok {
		return rule.Result
	}
	return r.fallback
}

// Match returns the first rule whose predicate holds for the answers.
// Returns false when no rule applies.
func (r *Resolver) Match(answers []trait.Tag) (Rule, bool) {
	return r.MatchTally(r.Tally(answers))
}

// MatchTally evaluates the rules against an existing tally.
func (r *Resolver) MatchTally(t trait.Tally) (Rule, bool) {
	for _, rule := range r.rules {
		if rule.When.Holds(t) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Tally counts the recognised traits in answers.
func (r *Resolver) Tally(answers []trait.Tag) trait.Tally {
	return trait.Count(answers, r.known)
}

// Rules returns the rules in priority order.
func (r *Resolver) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Fallback returns the result used when no rule matches.
func (r *Resolver) Fallback() Result {
	return r.fallback
}

// Known returns the recognised trait tags.
func (r *Resolver) Known() trait.Set {
	k := make(trait.Set, len(r.known))
	for t := range r.known {
		k[t] = struct{}{}
	}
	return k
}
