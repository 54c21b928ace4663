package output

import (
	"encoding/csv"
	"io"

	"logdash/internal/table"
)

// CSVFormatter writes a header row followed by one record per row.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = renderCell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
