package dataset

import (
	"fmt"
	"strings"

	"github.com/abhisek/tidenav/internal/trait"
)

// validateDocument performs the cross-field checks the schema can't express.
// Returns a combined error describing all problems found, or nil if valid.
func validateDocument(d *Document) error {
	var errs []string

	// Question IDs are 1-based and follow presentation order.
	for i, q := range d.Questions {
		if q.ID != i+1 {
			errs = append(errs, fmt.Sprintf("question at position %d has id %d, want %d", i, q.ID, i+1))
		}

		seen := make(map[trait.Tag]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o.Value] {
				errs = append(errs, fmt.Sprintf("question %d: duplicate option value %q", q.ID, o.Value))
			}
			seen[o.Value] = true
			if o.Direction < 0 || o.Direction >= 360 {
				errs = append(errs, fmt.Sprintf("question %d: option %q direction %d out of [0,360)", q.ID, o.Value, o.Direction))
			}
		}
	}

	// Rules may only reference traits some option can produce.
	known := d.Traits()
	names := make(map[string]bool, len(d.Archetypes))
	for _, a := range d.Archetypes {
		if names[a.Name] {
			errs = append(errs, fmt.Sprintf("duplicate archetype name %q", a.Name))
		}
		names[a.Name] = true

		if (len(a.All) == 0) == (len(a.Any) == 0) {
			errs = append(errs, fmt.Sprintf("archetype %q: exactly one of all/any must be set", a.Name))
		}
		for _, tag := range append(append([]trait.Tag{}, a.All...), a.Any...) {
			if !known.Has(tag) {
				errs = append(errs, fmt.Sprintf("archetype %q references unknown trait %q", a.Name, tag))
			}
		}
	}

	if d.Fallback.Title == "" {
		errs = append(errs, "fallback result has no title")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid dataset:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
