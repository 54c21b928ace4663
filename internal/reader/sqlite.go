package reader

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite" // SQLite driver.

	"logdash/internal/table"
)

// DefaultStatsTable is the table name the stats exporter writes.
const DefaultStatsTable = "player_stats"

// statsTableName restricts table names to plain identifiers; the name is
// interpolated into SQL, so nothing else may pass.
var statsTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads every row of the named table from a SQLite database.
func LoadSQLite(path, tableName string) (*table.Table, error) {
	if !statsTableName.MatchString(tableName) {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("invalid table name %q", tableName)}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query("SELECT * FROM " + tableName)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer func() { _ = rows.Close() }()

	rawColumns, err := rows.Columns()
	if err != nil {
		return nil, loadErr(path, err)
	}

	columns := make([]string, len(rawColumns))
	for i, col := range rawColumns {
		columns[i] = normalizeHeader(col)
	}

	var out []table.Row
	for rows.Next() {
		cells := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, loadErr(path, err)
		}

		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeSQLValue(cells[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, loadErr(path, err)
	}

	return finish(path, table.New(columns, out))
}

// normalizeSQLValue maps driver values onto the table value set. The
// driver hands TEXT back as []byte; everything else already fits.
func normalizeSQLValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
