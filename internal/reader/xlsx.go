package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"logdash/internal/table"
)

// LoadXLSX loads the first sheet of an Excel workbook. The first row is
// the header; short rows are padded with empty cells, which excelize
// trims from row tails.
func LoadXLSX(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, loadErr(path, err)
	}
	if len(records) == 0 {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("sheet %q is empty", sheets[0])}
	}

	header := records[0]
	cells := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		// excelize drops trailing empty cells; restore row width.
		for len(record) < len(header) {
			record = append(record, "")
		}
		cells = append(cells, record)
	}

	return rowsFromCells(path, header, cells)
}
