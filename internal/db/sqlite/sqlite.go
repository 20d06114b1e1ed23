/*
Package sqlite implements sqlite database operations.
*/
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite embedded
	"github.com/vigo/patchmatch/internal/db"
	"github.com/vigo/patchmatch/internal/dbmodel"
)

var _ db.Manager = (*DB)(nil) // compile time proof

const defaultFilename = "result.sqlite3"

// DB holds sqlite related params.
type DB struct {
	DB                   *sql.DB
	TargetSqliteFilename string
}

// InitDB creates initial sqlite table.
func (d *DB) InitDB() error {
	query := `CREATE TABLE IF NOT EXISTS patch_matches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		run_id TEXT NOT NULL,
		source TEXT NOT NULL,
		title TEXT NOT NULL,
		UNIQUE (run_id, source, title)
	);`
	_, err := d.DB.Exec(query)

	return err
}

// Save inserts data to db. Duplicates are ignored.
func (d *DB) Save(model *dbmodel.Match) error {
	if err := db.Validate(model); err != nil {
		return err
	}

	_, err := d.DB.Exec(
		"INSERT OR IGNORE INTO patch_matches (created_at, run_id, source, title) VALUES (CURRENT_TIMESTAMP, ?, ?, ?)",
		model.RunID,
		model.Source,
		model.Title,
	)
	return err
}

// FindByRun returns the matches of one run ordered by source and title.
func (d *DB) FindByRun(runID string) (dbmodel.Matches, error) {
	rows, err := d.DB.Query(
		"SELECT id, created_at, run_id, source, title FROM patch_matches WHERE run_id = ? ORDER BY source, title",
		runID,
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = rows.Close()
	}()

	var results dbmodel.Matches

	for rows.Next() {
		var entry dbmodel.Match
		if err = rows.Scan(&entry.ID, &entry.CreatedAt, &entry.RunID, &entry.Source, &entry.Title); err != nil {
			return nil, err
		}
		results = append(results, entry)
	}

	return results, rows.Err()
}

func (d *DB) setDefaults() {
	if d.TargetSqliteFilename == "" {
		d.TargetSqliteFilename = defaultFilename
	}
}

// Option represents option function type.
type Option func(*DB) error

// WithTargetSqliteFilename sets sqlite filename for creation.
func WithTargetSqliteFilename(s string) Option {
	return func(d *DB) error {
		if s == "" {
			return fmt.Errorf("%w, target filename can not be empty string", db.ErrValueRequired)
		}

		d.TargetSqliteFilename = s

		return nil
	}
}

// New instantiates new database instance.
func New(options ...Option) (*DB, error) {
	dbase := new(DB)
	for _, option := range options {
		if err := option(dbase); err != nil {
			return nil, err
		}
	}

	dbase.setDefaults()

	sqliteDB, err := sql.Open("sqlite3", dbase.TargetSqliteFilename)
	if err != nil {
		return nil, err
	}
	dbase.DB = sqliteDB

	return dbase, nil
}
