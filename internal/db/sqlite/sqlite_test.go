package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vigo/patchmatch/internal/db"
	"github.com/vigo/patchmatch/internal/db/sqlite"
	"github.com/vigo/patchmatch/internal/dbmodel"
)

func newDB(t *testing.T) *sqlite.DB {
	t.Helper()

	dbase, err := sqlite.New(
		sqlite.WithTargetSqliteFilename(filepath.Join(t.TempDir(), "result.sqlite3")),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = dbase.DB.Close()
	})

	require.NoError(t, dbase.InitDB())

	return dbase
}

func TestSaveAndFind(t *testing.T) {
	dbase := newDB(t)

	matches := dbmodel.Matches{
		{RunID: "run-1", Source: "Installomator", Title: "Slack"},
		{RunID: "run-1", Source: "Jamf App Installers", Title: "Firefox"},
		{RunID: "run-1", Source: "Installomator", Title: "Firefox"},
		{RunID: "run-1", Source: "Installomator", Title: "Firefox"},
		{RunID: "run-2", Source: "Installomator", Title: "Zoom.Us"},
	}
	require.NoError(t, db.SaveAll(dbase, matches))

	got, err := dbase.FindByRun("run-1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	var keys []string
	for _, m := range got {
		require.NotZero(t, m.ID)
		require.False(t, m.CreatedAt.IsZero())
		keys = append(keys, m.Source+"/"+m.Title)
	}
	require.Equal(t, []string{"Installomator/Firefox", "Installomator/Slack", "Jamf App Installers/Firefox"}, keys)

	got, err = dbase.FindByRun("missing")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSaveValidates(t *testing.T) {
	dbase := newDB(t)

	require.ErrorIs(t, dbase.Save(&dbmodel.Match{Source: "A", Title: "B"}), db.ErrValueRequired)
	require.ErrorIs(t, dbase.Save(nil), db.ErrValueRequired)
}

func TestEmptyFilename(t *testing.T) {
	_, err := sqlite.New(sqlite.WithTargetSqliteFilename(""))
	require.ErrorIs(t, err, db.ErrValueRequired)
}
