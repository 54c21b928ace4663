// Package output renders query results for the CLI. Formatters write a
// table to an io.Writer; cell values keep the table's column order and
// dates render as calendar days.
package output

import (
	"fmt"
	"io"
	"time"

	"logdash/internal/table"
)

// Formatter writes a table to w in one output format.
type Formatter interface {
	Format(w io.Writer, t *table.Table) error
}

// New returns the formatter for a format name: json, jsonl, csv, or
// table.
func New(format string) (Formatter, error) {
	switch format {
	case "json":
		return &JSONFormatter{}, nil
	case "jsonl":
		return &JSONLinesFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "table":
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// renderCell converts a cell to its output representation. Dates print
// as 2006-01-02; nil cells print empty.
func renderCell(v interface{}) string {
	switch cell := v.(type) {
	case nil:
		return ""
	case time.Time:
		return cell.Format("2006-01-02")
	case string:
		return cell
	case float64:
		return fmt.Sprintf("%g", cell)
	default:
		return fmt.Sprintf("%v", cell)
	}
}
