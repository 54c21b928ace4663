package main

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"logdash/internal/table"
)

func TestFilterSpecSingleDate(t *testing.T) {
	filterDate = "2024-01-15"
	filterFrom, filterTo = "", ""
	defer func() { filterDate = "" }()

	spec, err := filterSpec()
	if err != nil {
		t.Fatalf("filterSpec() error = %v", err)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !spec.From.Equal(want) || !spec.To.Equal(want) {
		t.Errorf("spec range = [%v, %v], want both %v", spec.From, spec.To, want)
	}
}

func TestFilterSpecDateConflicts(t *testing.T) {
	filterDate = "2024-01-15"
	filterFrom = "2024-01-01"
	defer func() { filterDate, filterFrom = "", "" }()

	if _, err := filterSpec(); err == nil {
		t.Fatal("filterSpec() error = nil, want conflict error")
	}
}

func TestFilterSpecBadDate(t *testing.T) {
	filterFrom = "15/01/2024"
	defer func() { filterFrom = "" }()

	if _, err := filterSpec(); err == nil {
		t.Fatal("filterSpec() error = nil, want parse error")
	}
}

func TestApplyDerivations(t *testing.T) {
	logger = zap.NewNop()

	src := table.New(
		[]string{table.ColName, "damage", "duration"},
		[]table.Row{{table.ColName: "Alice", "damage": 3000.0, "duration": 60.0}},
	)

	got, err := applyDerivations(src, []string{"dps=damage / duration", "dpm=dps * 60"})
	if err != nil {
		t.Fatalf("applyDerivations() error = %v", err)
	}
	if v := got.Rows[0]["dpm"]; v != 3000.0 {
		t.Errorf("dpm = %v, want 3000", v)
	}

	if _, err := applyDerivations(src, []string{"no_equals_sign"}); err == nil {
		t.Error("applyDerivations(bad flag) error = nil, want format error")
	}
}
