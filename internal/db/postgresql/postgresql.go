/*
Package postgresql implements PostgreSQL database operations.
*/
package postgresql

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/vigo/patchmatch/internal/db"
	"github.com/vigo/patchmatch/internal/dbmodel"
)

var _ db.Manager = (*DB)(nil) // Compile-time check

// DB holds PostgreSQL related parameters.
type DB struct {
	*sql.DB
	DSN string
}

// InitDB creates the initial PostgreSQL table.
// You need to `createdb` manually!
func (d *DB) InitDB() error {
	query := `CREATE TABLE IF NOT EXISTS "patch_matches" (
		"id" SERIAL PRIMARY KEY,
		"created_at" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"run_id" UUID NOT NULL,
		"source" VARCHAR(128) NOT NULL,
		"title" TEXT NOT NULL,
		UNIQUE ("run_id", "source", "title")
	);`
	_, err := d.DB.Exec(query)
	return err
}

// Save inserts data into the PostgreSQL database.
func (d *DB) Save(model *dbmodel.Match) error {
	if err := db.Validate(model); err != nil {
		return err
	}

	_, err := d.DB.Exec(
		`INSERT INTO patch_matches (run_id, source, title)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, source, title) DO NOTHING`,
		model.RunID,
		model.Source,
		model.Title,
	)
	return err
}

// FindByRun returns the matches of one run ordered by source and title.
func (d *DB) FindByRun(runID string) (dbmodel.Matches, error) {
	rows, err := d.DB.Query(
		`SELECT id, created_at, run_id, source, title FROM patch_matches
		 WHERE run_id = $1 ORDER BY source, title`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

// Option represents an option function type.
type Option func(*DB) error

// WithDSN sets the PostgreSQL DSN (Data Source Name).
func WithDSN(dsn string) Option {
	return func(d *DB) error {
		if dsn == "" {
			return fmt.Errorf("%w, dsn cannot be empty", db.ErrValueRequired)
		}

		d.DSN = dsn

		return nil
	}
}

// New initializes a new PostgreSQL database instance. DATABASE_URL is used
// when no DSN is given.
func New(options ...Option) (*DB, error) {
	dbase := new(DB)
	for _, option := range options {
		if err := option(dbase); err != nil {
			return nil, err
		}
	}

	if dbase.DSN == "" {
		dbase.DSN = os.Getenv("DATABASE_URL")
	}
	if dbase.DSN == "" {
		return nil, fmt.Errorf("%w, dsn cannot be empty", db.ErrValueRequired)
	}

	pgDB, err := sql.Open("postgres", dbase.DSN)
	if err != nil {
		return nil, err
	}
	dbase.DB = pgDB

	return dbase, nil
}
