/*
Package titleset implements a set of software titles.
*/
package titleset

import "sort"

// Set is a collection of unique software titles.
type Set map[string]struct{}

// New instantiates a set holding titles.
func New(titles ...string) Set {
	s := make(Set, len(titles))
	for _, title := range titles {
		s.Add(title)
	}
	return s
}

// Add inserts title.
func (s Set) Add(title string) {
	s[title] = struct{}{}
}

// Has reports whether title is in the set.
func (s Set) Has(title string) bool {
	_, ok := s[title]
	return ok
}

// Len returns the number of titles.
func (s Set) Len() int {
	return len(s)
}

// Intersect returns the titles present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(Set)
	for title := range small {
		if large.Has(title) {
			out.Add(title)
		}
	}
	return out
}

// Sorted returns titles in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for title := range s {
		out = append(out, title)
	}
	sort.Strings(out)
	return out
}
