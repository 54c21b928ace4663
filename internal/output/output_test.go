package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"logdash/internal/table"
)

func resultTable() *table.Table {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return table.New(
		[]string{table.ColName, table.ColProfession, table.ColDate, "dps"},
		[]table.Row{
			{table.ColName: "Alice", table.ColProfession: "Guardian", table.ColDate: day, "dps": 1234.5},
			{table.ColName: "Bob", table.ColProfession: "Necromancer", table.ColDate: day, "dps": 987.0},
		},
	)
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "jsonl", "csv", "table"} {
		if _, err := New(format); err != nil {
			t.Errorf("New(%q) error = %v", format, err)
		}
	}
	if _, err := New("xml"); err == nil {
		t.Error("New(\"xml\") error = nil, want unknown format error")
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVFormatter{}).Format(&buf, resultTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := strings.Join([]string{
		"name,profession,date,dps",
		"Alice,Guardian,2024-01-02,1234.5",
		"Bob,Necromancer,2024-01-02,987",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONLinesFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONLinesFormatter{}).Format(&buf, resultTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	want := map[string]interface{}{
		"name":       "Alice",
		"profession": "Guardian",
		"date":       "2024-01-02",
		"dps":        1234.5,
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, resultTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1]["name"] != "Bob" {
		t.Errorf("rows[1][name] = %v, want Bob", rows[1]["name"])
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, resultTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name", "profession", "Alice", "Necromancer", "2024-01-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCell(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"Guardian", "Guardian"},
		{float64(1.5), "1.5"},
		{float64(3), "3"},
		{int64(42), "42"},
		{time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "2024-03-04"},
	}
	for _, tt := range tests {
		if got := renderCell(tt.in); got != tt.want {
			t.Errorf("renderCell(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
