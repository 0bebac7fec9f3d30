package trait

import (
	"reflect"
	"testing"
)

func TestCount_IgnoresUnknown(t *testing.T) {
	known := NewSet("logic", "ambition")
	tally := Count([]Tag{"logic", "bogus", "logic", "ambition", ""}, known)

	if got := tally.Of("logic"); got != 2 {
		t.Errorf("Of(logic) = %d, want 2", got)
	}
	if got := tally.Of("ambition"); got != 1 {
		t.Errorf("Of(ambition) = %d, want 1", got)
	}
	if got := tally.Of("bogus"); got != 0 {
		t.Errorf("Of(bogus) = %d, want 0", got)
	}
	if got := tally.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
}

func TestCount_Empty(t *testing.T) {
	tally := Count(nil, NewSet("logic"))
	if tally.Total() != 0 {
		t.Errorf("Total() = %d, want 0", tally.Total())
	}
	if tally.Has("logic") {
		t.Error("empty tally should not have logic")
	}
	if len(tally.Tags()) != 0 {
		t.Errorf("Tags() = %v, want empty", tally.Tags())
	}
}

func TestZeroTally(t *testing.T) {
	var tally Tally
	if tally.Of("anything") != 0 || tally.Total() != 0 {
		t.Error("zero tally should count nothing")
	}
}

func TestTally_TagsSorted(t *testing.T) {
	tally := Count([]Tag{"peace", "hopeful", "clarity"}, NewSet("peace", "hopeful", "clarity"))
	want := []Tag{"clarity", "hopeful", "peace"}
	if got := tally.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestSet_Sorted(t *testing.T) {
	s := NewSet("b", "a", "c", "a")
	want := []Tag{"a", "b", "c"}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}
