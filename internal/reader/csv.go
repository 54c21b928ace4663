package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"logdash/internal/table"
)

// LoadCSV parses a CSV stream into a table. The first record is the
// header; each following record must have the same number of cells.
// The source string only labels errors.
func LoadCSV(r io.Reader, source string) (*table.Table, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, loadErr(source, err)
	}
	if len(records) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("empty CSV input")}
	}

	return rowsFromCells(source, records[0], records[1:])
}

// LoadCSVFile loads a CSV file from disk.
func LoadCSVFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer func() { _ = f.Close() }()

	return LoadCSV(f, path)
}
