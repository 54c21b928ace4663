package reader

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"logdash/internal/table"
)

// writeStatsDB creates a throwaway SQLite database in the stats exporter's
// shape and returns its path.
func writeStatsDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() { _ = db.Close() }()

	stmts := []string{
		`CREATE TABLE player_stats (
			name TEXT NOT NULL,
			profession TEXT NOT NULL,
			date TEXT NOT NULL,
			num_fights INTEGER NOT NULL,
			duration REAL NOT NULL,
			damage INTEGER NOT NULL,
			healing INTEGER NOT NULL
		);`,
		`INSERT INTO player_stats VALUES
			('Alice', 'Guardian', '2024-01-01', 2, 10.0, 1000, 500),
			('Bob', 'Necromancer', '2024-01-02 19:30:00', 3, 20.0, 2500, 100);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := writeStatsDB(t)

	got, err := LoadSQLite(path, DefaultStatsTable)
	if err != nil {
		t.Fatalf("LoadSQLite() error = %v", err)
	}

	wantColumns := []string{"name", "profession", "date", "num_fights", "duration", "damage", "healing"}
	if diff := cmp.Diff(wantColumns, got.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if got.Len() != 2 {
		t.Fatalf("got %d rows, want 2", got.Len())
	}

	first := got.Rows[0]
	if first["name"] != "Alice" || first["num_fights"] != int64(2) || first["duration"] != 10.0 {
		t.Errorf("first row = %v", first)
	}

	// Datetime text is stripped to its calendar date.
	date, ok := table.AsDate(got.Rows[1]["date"])
	if !ok || !date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v, want 2024-01-02 UTC", got.Rows[1]["date"])
	}
}

func TestLoadSQLiteViaDispatch(t *testing.T) {
	got, err := Load(writeStatsDB(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Len() != 2 {
		t.Errorf("got %d rows, want 2", got.Len())
	}
}

func TestLoadSQLiteErrors(t *testing.T) {
	path := writeStatsDB(t)

	t.Run("invalid table name", func(t *testing.T) {
		_, err := LoadSQLite(path, "player_stats; DROP TABLE player_stats")
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("error = %v, want *LoadError", err)
		}
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := LoadSQLite(path, "no_such_table")
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("error = %v, want *LoadError", err)
		}
	})
}
