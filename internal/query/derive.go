package query

import (
	"fmt"

	"logdash/internal/formula"
	"logdash/internal/table"
)

// Derive evaluates a formula against each row and returns a new table
// with the result written to the named column (added, or overwritten if
// it already exists). The input table is never modified.
//
// All failures - syntax errors, references to columns the table does not
// have, and row-level evaluation faults such as a non-numeric operand -
// are *formula.FormulaError. Division by zero is not a failure: it
// produces a non-finite value for that row and the remaining rows are
// unaffected.
func Derive(t *table.Table, name, expression string) (*table.Table, error) {
	expr, err := formula.Parse(expression)
	if err != nil {
		return nil, err
	}

	// Bind identifiers up front so an unknown column fails once, before
	// any evaluation work, rather than on the first row.
	for _, col := range formula.Columns(expr) {
		if !t.HasColumn(col) {
			return nil, &formula.FormulaError{
				Formula: expression,
				Err:     fmt.Errorf("column %q not found in table", col),
			}
		}
	}

	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		v, err := expr.Eval(row)
		if err != nil {
			return nil, &formula.FormulaError{
				Formula: expression,
				Err:     fmt.Errorf("row %d: %w", i, err),
			}
		}
		values[i] = v
	}

	derived, err := t.WithColumn(name, values)
	if err != nil {
		return nil, &formula.FormulaError{Formula: expression, Err: err}
	}
	return derived, nil
}

// RateColumn pairs a derived column name with its formula.
type RateColumn struct {
	Name    string
	Formula string
}

// DefaultRateColumns are the per-second rates the fight dashboards add on
// spreadsheet upload.
var DefaultRateColumns = []RateColumn{
	{Name: "dps", Formula: "damage / duration"},
	{Name: "cps", Formula: "cleanses / duration"},
	{Name: "rps", Formula: "boon_strips / duration"},
	{Name: "hps", Formula: "healing / duration"},
}

// DeriveRates adds every applicable default rate column. Rates whose
// source columns are absent from the table are skipped rather than
// failing, since spreadsheet exports vary in which counters they carry.
func DeriveRates(t *table.Table) (*table.Table, error) {
	out := t
	for _, rate := range DefaultRateColumns {
		expr, err := formula.Parse(rate.Formula)
		if err != nil {
			return nil, err
		}
		applicable := true
		for _, col := range formula.Columns(expr) {
			if !out.HasColumn(col) {
				applicable = false
				break
			}
		}
		if !applicable {
			continue
		}
		out, err = Derive(out, rate.Name, rate.Formula)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
