package output

import (
	"encoding/json"
	"io"
	"time"

	"logdash/internal/table"
)

// JSONFormatter writes the whole result as one JSON array of objects.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, t *table.Table) error {
	objects := make([]map[string]interface{}, 0, t.Len())
	for _, row := range t.Rows {
		objects = append(objects, jsonRow(t.Columns, row))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(objects)
}

// JSONLinesFormatter writes one JSON object per row.
type JSONLinesFormatter struct{}

func (f *JSONLinesFormatter) Format(w io.Writer, t *table.Table) error {
	enc := json.NewEncoder(w)
	for _, row := range t.Rows {
		if err := enc.Encode(jsonRow(t.Columns, row)); err != nil {
			return err
		}
	}
	return nil
}

// jsonRow keeps only the table's declared columns and renders dates as
// calendar days so encoded output is stable across sources.
func jsonRow(columns []string, row table.Row) map[string]interface{} {
	obj := make(map[string]interface{}, len(columns))
	for _, col := range columns {
		v := row[col]
		if d, ok := v.(time.Time); ok {
			v = d.Format("2006-01-02")
		}
		obj[col] = v
	}
	return obj
}
