package query

import "logdash/internal/table"

// Summary holds the headline numbers for a filtered table.
type Summary struct {
	TotalFights   int64   `json:"total_fights"`
	TotalDuration float64 `json:"total_duration"`
	UniquePlayers int     `json:"unique_players"`
}

// Summarize reduces a table to its overview metrics: total fight count,
// total duration, and the number of distinct player names. Cells that are
// missing or non-numeric contribute nothing to the sums.
func Summarize(t *table.Table) Summary {
	var s Summary
	seen := make(map[string]bool)

	for _, row := range t.Rows {
		if fights, ok := table.AsFloat(row[table.ColNumFights]); ok {
			s.TotalFights += int64(fights)
		}
		if duration, ok := table.AsFloat(row[table.ColDuration]); ok {
			s.TotalDuration += duration
		}
		if name, ok := table.AsString(row[table.ColName]); ok && !seen[name] {
			seen[name] = true
			s.UniquePlayers++
		}
	}

	return s
}
