package archetype

import (
	"fmt"
	"strings"

	"github.com/abhisek/tidenav/internal/trait"
)

// Result is the display profile of an archetype.
type Result struct {
	Title       string `json:"title"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Guidance    string `json:"guidance"`
	Direction   string `json:"direction"`
}

// Predicate decides whether a tally qualifies for a rule.
// Implementations must only read the tally.
type Predicate interface {
	Holds(t trait.Tally) bool
	String() string
}

// Rule pairs a predicate with the result it selects.
type Rule struct {
	Name   string
	When   Predicate
	Result Result
}

// AllOf holds when every listed trait was counted at least once.
func AllOf(tags ...trait.Tag) Predicate {
	return allOf(tags)
}

// AnyOf holds when at least one listed trait was counted.
func AnyOf(tags ...trait.Tag) Predicate {
	return anyOf(tags)
}

type allOf []trait.Tag

func (p allOf) Holds(t trait.Tally) bool {
	if len(p) == 0 {
		return false
	}
	for _, tag := range p {
		if !t.Has(tag) {
			return false
		}
	}
	return true
}

func (p allOf) String() string { return describe("all of", p) }

type anyOf []trait.Tag

func (p anyOf) Holds(t trait.Tally) bool {
	for _, tag := range p {
		if t.Has(tag) {
			return true
		}
	}
	return false
}

func (p anyOf) String() string { return describe("any of", p) }

func describe(op string, tags []trait.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return fmt.Sprintf("%s [%s]", op, strings.Join(parts, ", "))
}
