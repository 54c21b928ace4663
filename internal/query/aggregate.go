package query

import (
	"fmt"
	"strings"
	"time"

	"logdash/internal/table"
)

// Reducer names a reduction applied to the metric column of each group.
type Reducer string

// Supported reducers. The dashboards only ever chart the mean; the rest
// come along for table views.
const (
	ReduceMean  Reducer = "mean"
	ReduceSum   Reducer = "sum"
	ReduceMin   Reducer = "min"
	ReduceMax   Reducer = "max"
	ReduceCount Reducer = "count"
)

// group collects the rows sharing one combination of group-column values.
type group struct {
	values table.Row
	rows   []table.Row
}

// Aggregate groups rows by the distinct combination of values in
// groupColumns and reduces metricColumn per group. The output has one
// row per group, carrying the group columns plus the reduced metric, in
// first-seen group order so repeated runs produce identical tables.
func Aggregate(t *table.Table, groupColumns []string, metricColumn string, reducer Reducer) (*table.Table, error) {
	if len(groupColumns) == 0 {
		return nil, fmt.Errorf("aggregate requires at least one group column")
	}
	for _, col := range groupColumns {
		if !t.HasColumn(col) {
			return nil, &MissingColumnError{Column: col}
		}
	}
	if !t.HasColumn(metricColumn) {
		return nil, &MissingColumnError{Column: metricColumn}
	}

	// Hash-based grouping with first-seen key order.
	groups := make(map[string]*group)
	var order []string

	for _, row := range t.Rows {
		key, values := groupKey(row, groupColumns)
		g, exists := groups[key]
		if !exists {
			g = &group{values: values}
			groups[key] = g
			order = append(order, key)
		}
		g.rows = append(g.rows, row)
	}

	columns := make([]string, 0, len(groupColumns)+1)
	columns = append(columns, groupColumns...)
	if !contains(groupColumns, metricColumn) {
		columns = append(columns, metricColumn)
	}

	out := make([]table.Row, 0, len(order))
	for _, key := range order {
		g := groups[key]
		reduced, err := reduce(g.rows, metricColumn, reducer)
		if err != nil {
			return nil, err
		}

		row := make(table.Row, len(columns))
		for _, col := range groupColumns {
			row[col] = g.values[col]
		}
		row[metricColumn] = reduced
		out = append(out, row)
	}

	return table.New(columns, out), nil
}

// groupKey builds a collision-safe hash key from the group column values
// and returns those values for the output row.
func groupKey(row table.Row, groupColumns []string) (string, table.Row) {
	var keyBuilder strings.Builder
	values := make(table.Row, len(groupColumns))

	for i, col := range groupColumns {
		value := row[col]
		if i > 0 {
			keyBuilder.WriteString("\x00||\x00") // unlikely separator to avoid collisions
		}
		keyBuilder.WriteString(col)
		keyBuilder.WriteString("\x00:\x00")
		keyBuilder.WriteString(keyCell(value))
		values[col] = value
	}

	return keyBuilder.String(), values
}

// keyCell renders one cell for key building. Dates use their calendar
// form so equal dates always collide into the same group.
func keyCell(value interface{}) string {
	if t, ok := value.(time.Time); ok {
		return table.Normalize(t).Format("2006-01-02")
	}
	return fmt.Sprintf("%#v", value)
}

// reduce applies the reducer to the metric column of one group's rows.
// Non-numeric and missing cells are skipped, mirroring how NULLs fall out
// of SQL aggregates.
func reduce(rows []table.Row, metricColumn string, reducer Reducer) (interface{}, error) {
	var (
		sum   float64
		min   float64
		max   float64
		count int64
	)

	for _, row := range rows {
		num, ok := table.AsFloat(row[metricColumn])
		if !ok {
			continue
		}
		if count == 0 || num < min {
			min = num
		}
		if count == 0 || num > max {
			max = num
		}
		sum += num
		count++
	}

	switch reducer {
	case ReduceCount:
		return count, nil
	case ReduceSum:
		return sum, nil
	case ReduceMean, "":
		if count == 0 {
			return nil, nil
		}
		return sum / float64(count), nil
	case ReduceMin:
		if count == 0 {
			return nil, nil
		}
		return min, nil
	case ReduceMax:
		if count == 0 {
			return nil, nil
		}
		return max, nil
	default:
		return nil, fmt.Errorf("unknown reducer: %s", reducer)
	}
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
