package titleset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vigo/patchmatch/internal/titleset"
)

func TestIntersect(t *testing.T) {
	a := titleset.New("Zoom", "Firefox", "Slack", "1Password 8")
	b := titleset.New("Slack", "Firefox", "Google Chrome")

	got := a.Intersect(b).Sorted()
	if diff := cmp.Diff([]string{"Firefox", "Slack"}, got); diff != "" {
		t.Errorf("Intersect() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(got, b.Intersect(a).Sorted()); diff != "" {
		t.Errorf("Intersect() is not symmetric (-a∩b +b∩a):\n%s", diff)
	}
}

func TestIntersectEmpty(t *testing.T) {
	a := titleset.New("Zoom")
	if n := a.Intersect(titleset.New()).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestAddDeduplicates(t *testing.T) {
	s := titleset.New("Firefox", "Firefox")
	s.Add("Firefox")

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if !s.Has("Firefox") {
		t.Error("Has(Firefox) = false, want true")
	}
	if s.Has("firefox") {
		t.Error("Has(firefox) = true, want false")
	}
}

func TestSorted(t *testing.T) {
	got := titleset.New("b", "C", "a", "A").Sorted()
	want := []string{"A", "C", "a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}
