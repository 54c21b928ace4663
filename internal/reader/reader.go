// Package reader loads combat-log sources into tables.
//
// Four source formats are supported: SQLite databases (the per-raid
// stats database), CSV and XLSX spreadsheet exports, and Parquet files.
// Every loader produces a table with a uniform schema, snake_case column
// names, and a normalized calendar-date column. All loader failures are
// *LoadError.
package reader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"logdash/internal/table"
)

// LoadError reports a source that could not be parsed into a uniform
// schema. The operation is aborted; no partial table is produced.
type LoadError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// loadErr wraps err in a *LoadError unless it already is one.
func loadErr(source string, err error) error {
	if _, ok := err.(*LoadError); ok {
		return err
	}
	return &LoadError{Source: source, Err: err}
}

// dateLayouts are the date formats seen across stats exports: plain
// calendar dates, SQLite datetime text, and RFC 3339 timestamps.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006", // spreadsheet-style
}

// Load reads a source file, dispatching on its extension: .db, .sqlite,
// and .sqlite3 open as SQLite (default stats table), .csv, .xlsx, and
// .parquet as their respective formats.
func Load(path string) (*table.Table, error) {
	return LoadStats(path, DefaultStatsTable)
}

// LoadStats is Load with a configurable SQLite stats table name. The
// table name only matters for SQLite sources.
func LoadStats(path, statsTable string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, statsTable)
	case ".csv":
		return LoadCSVFile(path)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	case ".parquet":
		return LoadParquet(path)
	default:
		return nil, &LoadError{Source: path, Err: fmt.Errorf("unsupported source format %q", filepath.Ext(path))}
	}
}

// finish applies the shared post-processing every loader goes through:
// header normalization happened already, so validate the required
// columns and normalize the date column.
func finish(source string, t *table.Table) (*table.Table, error) {
	for _, col := range []string{table.ColName, table.ColProfession, table.ColDate} {
		if !t.HasColumn(col) {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("required column %q missing", col)}
		}
	}

	for i, row := range t.Rows {
		date, err := parseDate(row[table.ColDate])
		if err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("row %d: %w", i, err)}
		}
		row[table.ColDate] = date
	}

	return t, nil
}

// parseDate coerces a raw cell into a normalized calendar date.
func parseDate(v interface{}) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return table.Normalize(val), nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return table.Normalize(t), nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", val)
	case int64:
		// Unix seconds, as some exporters write.
		return table.Normalize(time.Unix(val, 0).UTC()), nil
	default:
		return time.Time{}, fmt.Errorf("date cell has unsupported type %T", v)
	}
}

// normalizeHeader maps source headers onto the snake_case schema:
// "Condition Cleanses" and "condition_cleanses" are the same column.
func normalizeHeader(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// inferCell converts a textual cell to the narrowest matching type:
// int64, then float64, then string. Empty cells become nil.
func inferCell(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// rowsFromCells builds a table from a header row plus string cell rows,
// as produced by the CSV and XLSX loaders.
func rowsFromCells(source string, header []string, cells [][]string) (*table.Table, error) {
	if len(header) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("empty header row")}
	}

	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		col := normalizeHeader(h)
		if col == "" {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("blank column name at position %d", i)}
		}
		if seen[col] {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("duplicate column %q", col)}
		}
		seen[col] = true
		columns[i] = col
	}

	rows := make([]table.Row, 0, len(cells))
	for i, record := range cells {
		if len(record) != len(columns) {
			return nil, &LoadError{
				Source: source,
				Err:    fmt.Errorf("row %d has %d cells, want %d", i+1, len(record), len(columns)),
			}
		}
		row := make(table.Row, len(columns))
		for j, cell := range record {
			row[columns[j]] = inferCell(cell)
		}
		rows = append(rows, row)
	}

	return finish(source, table.New(columns, rows))
}
