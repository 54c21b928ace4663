// Package query implements the tabular query engine for combat-log
// statistics: filtering by player/profession/date predicates, deriving
// columns from user formulas, group-by aggregation, summary statistics,
// and chart column projections.
//
// Every operation is a pure table -> table (or table -> scalar)
// transform. Inputs are never mutated, so callers may chain operations in
// any order without locking.
//
// Example usage:
//
//	filtered := query.Filter(tbl, query.FilterSpec{Professions: []string{"Guardian"}})
//	derived, err := query.Derive(filtered, "dps", "damage / duration")
//	if err != nil {
//	    // *formula.FormulaError: report and keep the previous table
//	}
package query

import "fmt"

// MissingColumnError reports a group, metric, or axis column absent from
// the table. The dependent chart or aggregation is simply not produced.
type MissingColumnError struct {
	Column string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in table", e.Column)
}
