// Package config defines process configuration and its loading order.
package config

import "logdash/internal/cache"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CacheCapacity bounds the number of loaded sources kept resident.
	CacheCapacity int `koanf:"cache_capacity"`

	// StatsTable names the table read from SQLite sources.
	StatsTable string `koanf:"stats_table"`

	// OutputFormat selects the default output format: json, jsonl,
	// csv, or table.
	OutputFormat string `koanf:"output_format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		CacheCapacity: cache.DefaultCapacity,
		StatsTable:    "player_stats",
		OutputFormat:  "table",
	}
}
