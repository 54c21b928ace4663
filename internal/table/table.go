// Package table provides the in-memory tabular data model shared by the
// loaders and the query engine.
//
// A Table is an ordered collection of rows over a uniform schema. Rows are
// maps from column name to value; the Columns slice fixes a deterministic
// column order. Tables are treated as immutable once built: every engine
// operation derives a new Table instead of mutating its input.
package table

import (
	"fmt"
	"time"
)

// Well-known column names for combat-log records.
const (
	ColName       = "name"
	ColProfession = "profession"
	ColDate       = "date"
	ColNumFights  = "num_fights"
	ColDuration   = "duration"
)

// Row is a single record keyed by column name.
type Row = map[string]interface{}

// Table is an ordered collection of rows sharing a uniform schema.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates a table from a column list and rows. The column order is
// preserved as given.
func New(columns []string, rows []Row) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table schema contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) []interface{} {
	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// WithRows returns a new table sharing this table's schema but holding the
// given rows. Used by filtering, which never copies row maps.
func (t *Table) WithRows(rows []Row) *Table {
	return &Table{Columns: t.Columns, Rows: rows}
}

// WithColumn returns a new table extended (or overwritten) with the named
// column. Row maps are copied so the receiving table stays untouched.
func (t *Table) WithColumn(name string, values []interface{}) (*Table, error) {
	if len(values) != len(t.Rows) {
		return nil, fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		copied := make(Row, len(row)+1)
		for k, v := range row {
			copied[k] = v
		}
		copied[name] = values[i]
		rows[i] = copied
	}

	columns := t.Columns
	if !t.HasColumn(name) {
		columns = make([]string, len(t.Columns), len(t.Columns)+1)
		copy(columns, t.Columns)
		columns = append(columns, name)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// AsFloat converts a cell value to float64 if possible.
func AsFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// AsString converts a cell value to string if possible.
func AsString(v interface{}) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	return "", false
}

// AsDate converts a cell value to a calendar date if possible. The value
// is normalized to midnight UTC so time-of-day never leaks into date
// comparisons.
func AsDate(v interface{}) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return Normalize(t), true
	}
	return time.Time{}, false
}

// Normalize strips the time-of-day component and forces UTC.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
