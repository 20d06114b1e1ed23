/*
Package db provides database abstraction for the run archive.
*/
package db

import (
	"errors"
	"fmt"

	"github.com/vigo/patchmatch/internal/dbmodel"
)

// Manager defines database behaviours.
type Manager interface {
	InitDB() error
	Save(model *dbmodel.Match) error
	FindByRun(runID string) (dbmodel.Matches, error)
}

// sentinel errors.
var (
	ErrValueRequired = errors.New("value required")
)

// SaveAll stores every match, stopping at the first failure.
func SaveAll(m Manager, matches dbmodel.Matches) error {
	for i := range matches {
		if err := m.Save(&matches[i]); err != nil {
			return fmt.Errorf("save %s/%s: %w", matches[i].Source, matches[i].Title, err)
		}
	}
	return nil
}

// Validate checks the fields every row needs.
func Validate(model *dbmodel.Match) error {
	switch {
	case model == nil:
		return fmt.Errorf("%w, model", ErrValueRequired)
	case model.RunID == "":
		return fmt.Errorf("%w, run id", ErrValueRequired)
	case model.Source == "":
		return fmt.Errorf("%w, source", ErrValueRequired)
	case model.Title == "":
		return fmt.Errorf("%w, title", ErrValueRequired)
	}
	return nil
}
