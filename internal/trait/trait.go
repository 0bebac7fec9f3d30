package trait

import "sort"

// Tag is an opaque trait identifier attached to a quiz option.
type Tag string

// Set is a closed set of recognised trait tags.
type Set map[Tag]struct{}

// NewSet builds a Set from the given tags.
func NewSet(tags ...Tag) Set {
	s := make(Set, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether tag belongs to the set.
func (s Set) Has(tag Tag) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tally is a read-only count of trait occurrences.
// The zero value is an empty tally.
type Tally struct {
	counts map[Tag]int
}

// Count tallies the answers whose tags belong to known.
// Tags outside known are skipped.
func Count(answers []Tag, known Set) Tally {
	counts := make(map[Tag]int, len(known))
	for _, a := range answers {
		if !known.Has(a) {
			continue
		}
		counts[a]++
	}
	return Tally{counts: counts}
}

// Of returns the count for tag, zero if it never appeared.
func (t Tally) Of(tag Tag) int {
	return t.counts[tag]
}

// Has reports whether tag was counted at least once.
func (t Tally) Has(tag Tag) bool {
	return t.counts[tag] > 0
}

// Total returns the number of counted answers.
func (t Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Tags returns the tags with a non-zero count, sorted.
func (t Tally) Tags() []Tag {
	out := make([]Tag, 0, len(t.counts))
	for tag, c := range t.counts {
		if c > 0 {
			out = append(out, tag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
