package catalog

import (
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

const nameMarker = `name="`

// ParseSoftwareTitles returns the trimmed text of every list item inside
// div#containerID, in document order. Empty items are skipped.
func ParseSoftwareTitles(r io.Reader, containerID string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	container := doc.Find("div#" + containerID).First()
	if container.Length() == 0 {
		return nil, ErrSectionNotFound
	}

	var titles []string
	container.Find("li").Each(func(_ int, item *goquery.Selection) {
		if title := strings.TrimSpace(item.Text()); title != "" {
			titles = append(titles, title)
		}
	})

	return titles, nil
}

// ExtractNames pulls the value of the first name="..." token out of every
// line that has one. Duplicates are dropped, first occurrence wins.
func ExtractNames(text string) []string {
	seen := make(map[string]struct{})

	var names []string
	for _, line := range strings.Split(text, "\n") {
		_, rest, ok := strings.Cut(line, nameMarker)
		if !ok {
			continue
		}

		name, _, _ := strings.Cut(rest, `"`)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// NormalizeTitle trims s and title-cases it: a cased letter becomes upper
// case when the rune before it is uncased, lower case otherwise.
func NormalizeTitle(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			r = unicode.ToLower(r)
		case cased:
			r = unicode.ToTitle(r)
		}
		prevCased = cased
		b.WriteRune(r)
	}

	return b.String()
}

// NormalizeNames normalizes every name and returns the unique, non-empty
// results sorted.
func NormalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))

	out := make([]string, 0, len(names))
	for _, name := range names {
		title := NormalizeTitle(name)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}

	sort.Strings(out)

	return out
}
