/*
Package scan runs the catalog sources against the Jamf inventory.
*/
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/vigo/patchmatch/internal/dbmodel"
	"github.com/vigo/patchmatch/internal/titleset"
	"github.com/vigo/patchmatch/internal/tlog"
)

// sentinel errors.
var (
	ErrValueRequired = errors.New("value required")
)

// Source lists software titles from one patching catalog.
type Source interface {
	Name() string
	Titles(ctx context.Context) ([]string, error)
}

// Checker answers whether a title is present in the inventory.
type Checker interface {
	HasApplication(ctx context.Context, title string) (bool, error)
}

// SourceResult holds the titles of one source confirmed in the inventory.
type SourceResult struct {
	Titles  titleset.Set
	Name    string
	Scraped int
}

// Result is the outcome of a run.
type Result struct {
	RunID   string
	Sources []SourceResult
}

// Common returns the titles confirmed via every source.
func (r *Result) Common() titleset.Set {
	if len(r.Sources) == 0 {
		return titleset.New()
	}

	common := r.Sources[0].Titles
	for _, src := range r.Sources[1:] {
		common = common.Intersect(src.Titles)
	}

	return titleset.New(common.Sorted()...)
}

// Matches flattens the result into archive rows.
func (r *Result) Matches() dbmodel.Matches {
	var matches dbmodel.Matches
	for _, src := range r.Sources {
		for _, title := range src.Titles.Sorted() {
			matches = append(matches, dbmodel.Match{
				RunID:  r.RunID,
				Source: src.Name,
				Title:  title,
			})
		}
	}
	return matches
}

var (
	checkingColor = color.New(color.FgCyan)
	foundColor    = color.New(color.FgGreen)
	missingColor  = color.New(color.FgYellow)
)

// Scanner visits sources one after another and checks every title.
type Scanner struct {
	Checker Checker
	Output  io.Writer
	Logger  *slog.Logger
}

// Option represents option function type.
type Option func(*Scanner)

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Scanner) {
		s.Output = w
	}
}

// WithLogger sets logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		s.Logger = l
	}
}

// New instantiates a scanner.
func New(checker Checker, options ...Option) (*Scanner, error) {
	if checker == nil {
		return nil, fmt.Errorf("%w, checker", ErrValueRequired)
	}

	s := &Scanner{Checker: checker}
	for _, option := range options {
		option(s)
	}

	if s.Output == nil {
		s.Output = os.Stdout
	}
	if s.Logger == nil {
		s.Logger = tlog.Discard()
	}

	return s, nil
}

// Run scrapes every source in order and checks each title against the
// inventory. A failing source is logged and contributes no titles; a failing
// inventory lookup aborts the run.
func (s *Scanner) Run(ctx context.Context, sources ...Source) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}

	for _, src := range sources {
		sr, err := s.runSource(ctx, src)
		if err != nil {
			return nil, err
		}
		result.Sources = append(result.Sources, sr)
	}

	return result, nil
}

func (s *Scanner) runSource(ctx context.Context, src Source) (SourceResult, error) {
	sr := SourceResult{Name: src.Name(), Titles: titleset.New()}

	titles, err := src.Titles(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return sr, ctx.Err()
		}
		s.Logger.Error("scrape", "source", sr.Name, "err", err)
		_, _ = fmt.Fprintf(s.Output, "An error occurred: %s\n", err)

		return sr, nil
	}
	sr.Scraped = len(titles)

	for _, title := range titles {
		_, _ = checkingColor.Fprintf(s.Output, "Checking %s...\n", title)

		found, errr := s.Checker.HasApplication(ctx, title)
		if errr != nil {
			return sr, fmt.Errorf("check %q from %s: %w", title, sr.Name, errr)
		}

		if found {
			sr.Titles.Add(title)
			_, _ = foundColor.Fprintf(s.Output, "Found in Jamf API: %s\n", title)
			continue
		}

		_, _ = missingColor.Fprintf(s.Output, "Not found in Jamf API: %s\n", title)
	}

	s.Logger.Info("source done", "source", sr.Name, "scraped", sr.Scraped, "found", sr.Titles.Len())

	return sr, nil
}
