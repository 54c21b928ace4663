package query

import (
	"time"

	"logdash/internal/table"
)

// FilterSpec is a conjunction of membership and date-range predicates.
// Empty player/profession selections match all rows, not none. Zero From
// or To leaves that side of the date range unbounded; From equal to To
// selects exactly that calendar date.
type FilterSpec struct {
	Players     []string
	Professions []string
	From        time.Time
	To          time.Time
}

// IsEmpty reports whether the spec restricts nothing.
func (s FilterSpec) IsEmpty() bool {
	return len(s.Players) == 0 && len(s.Professions) == 0 && s.From.IsZero() && s.To.IsZero()
}

// Filter returns a new table containing only rows matching every
// predicate in the spec, preserving the original row order.
func Filter(t *table.Table, spec FilterSpec) *table.Table {
	if spec.IsEmpty() {
		return t.WithRows(t.Rows)
	}

	players := toSet(spec.Players)
	professions := toSet(spec.Professions)
	from := normalizeBound(spec.From)
	to := normalizeBound(spec.To)

	matched := make([]table.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !matchMembership(row, table.ColName, players) {
			continue
		}
		if !matchMembership(row, table.ColProfession, professions) {
			continue
		}
		if !matchDateRange(row, from, to) {
			continue
		}
		matched = append(matched, row)
	}

	return t.WithRows(matched)
}

// matchMembership checks a categorical column against a selection set.
// An empty set matches everything.
func matchMembership(row table.Row, column string, set map[string]bool) bool {
	if len(set) == 0 {
		return true
	}
	value, ok := table.AsString(row[column])
	if !ok {
		return false
	}
	return set[value]
}

// matchDateRange checks the date column against an inclusive range.
// Rows without a comparable date are excluded once a bound is set.
func matchDateRange(row table.Row, from, to time.Time) bool {
	if from.IsZero() && to.IsZero() {
		return true
	}
	date, ok := table.AsDate(row[table.ColDate])
	if !ok {
		return false
	}
	if !from.IsZero() && date.Before(from) {
		return false
	}
	if !to.IsZero() && date.After(to) {
		return false
	}
	return true
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func normalizeBound(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return table.Normalize(t)
}
