package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"logdash/internal/table"
)

// TableFormatter writes an aligned text table for terminal use.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, t *table.Table) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = renderCell(row[col])
		}
		tw.Append(record)
	}
	tw.Render()
	return nil
}
