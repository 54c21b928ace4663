package reader

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"logdash/internal/table"
)

type parquetStat struct {
	Name       string  `parquet:"name"`
	Profession string  `parquet:"profession"`
	Date       string  `parquet:"date"`
	Damage     int64   `parquet:"damage"`
	Duration   float64 `parquet:"duration"`
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.parquet")

	stats := []parquetStat{
		{Name: "Alice", Profession: "Guardian", Date: "2024-01-01", Damage: 1000, Duration: 10},
		{Name: "Bob", Profession: "Necromancer", Date: "2024-01-02", Damage: 2500, Duration: 20},
	}
	if err := parquet.WriteFile(path, stats); err != nil {
		t.Fatalf("write parquet: %v", err)
	}

	got, err := LoadParquet(path)
	if err != nil {
		t.Fatalf("LoadParquet() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("got %d rows, want 2", got.Len())
	}
	if got.Rows[0]["name"] != "Alice" || got.Rows[0]["damage"] != int64(1000) {
		t.Errorf("first row = %v", got.Rows[0])
	}
	if _, ok := table.AsDate(got.Rows[0]["date"]); !ok {
		t.Errorf("date not normalized: %v", got.Rows[0]["date"])
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Name", "Profession", "Date", "Damage", "Duration"},
		{"Alice", "Guardian", "2024-01-01", 1000, 10},
		{"Bob", "Necromancer", "2024-01-02", 2500, 20},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}

	got, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("got %d rows, want 2", got.Len())
	}
	if got.Rows[1]["name"] != "Bob" || got.Rows[1]["damage"] != int64(2500) {
		t.Errorf("second row = %v", got.Rows[1])
	}
	if _, ok := table.AsDate(got.Rows[1]["date"]); !ok {
		t.Errorf("date not normalized: %v", got.Rows[1]["date"])
	}
}
