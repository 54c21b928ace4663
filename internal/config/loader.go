package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LOGDASH_CONFIG is set
//  3. env (prefix LOGDASH_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("LOGDASH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: LOGDASH_CACHE_CAPACITY, LOGDASH_STATS_TABLE, ...
	// Map env keys like LOGDASH_STATS_TABLE -> stats_table (flat keys).
	envProvider := env.Provider("LOGDASH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "logdash_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.StatsTable == "" {
		return nil, errors.New("stats_table must not be empty")
	}
	switch cfg.OutputFormat {
	case "json", "jsonl", "csv", "table":
	default:
		return nil, errors.New("output_format must be one of json, jsonl, csv, table")
	}
	return &cfg, nil
}
