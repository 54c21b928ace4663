package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"logdash/internal/table"
)

// LoadParquet reads all rows from a Parquet file. Column names are
// normalized the same way as spreadsheet headers, so an export with
// capitalized columns lines up with the snake_case schema.
func LoadParquet(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, loadErr(path, err)
	}

	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, loadErr(path, err)
	}

	var columns []string
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, normalizeHeader(field.Name()))
	}
	if len(columns) == 0 {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("parquet file has no columns")}
	}

	pr := parquet.NewReader(pqFile)
	defer func() { _ = pr.Close() }()

	var out []table.Row
	for {
		raw := make(map[string]interface{})
		if err := pr.Read(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, loadErr(path, fmt.Errorf("failed to read row: %w", err))
		}

		row := make(table.Row, len(raw))
		for k, v := range raw {
			row[normalizeHeader(k)] = v
		}
		out = append(out, row)
	}

	return finish(path, table.New(columns, out))
}
