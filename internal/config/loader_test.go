package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOGDASH_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CacheCapacity != New().CacheCapacity {
		t.Errorf("CacheCapacity = %d, want default %d", cfg.CacheCapacity, New().CacheCapacity)
	}
	if cfg.StatsTable != "player_stats" {
		t.Errorf("StatsTable = %q, want %q", cfg.StatsTable, "player_stats")
	}
	if cfg.OutputFormat != "table" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "table")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logdash.yaml")
	body := "cache_capacity: 3\nstats_table: squad_stats\noutput_format: csv\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOGDASH_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CacheCapacity != 3 {
		t.Errorf("CacheCapacity = %d, want 3", cfg.CacheCapacity)
	}
	if cfg.StatsTable != "squad_stats" {
		t.Errorf("StatsTable = %q, want %q", cfg.StatsTable, "squad_stats")
	}
	if cfg.OutputFormat != "csv" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "csv")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logdash.yaml")
	if err := os.WriteFile(path, []byte("output_format: csv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOGDASH_CONFIG", path)
	t.Setenv("LOGDASH_OUTPUT_FORMAT", "jsonl")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputFormat != "jsonl" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "jsonl")
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	t.Setenv("LOGDASH_CONFIG", "")
	t.Setenv("LOGDASH_OUTPUT_FORMAT", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want output format error")
	}
}
