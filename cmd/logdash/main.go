package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"logdash/internal/cache"
	"logdash/internal/config"
)

var (
	// Global flags
	verbose      bool
	outputFormat string

	cfg      *config.Config
	registry *cache.Registry

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "logdash",
	Short: "Query engine for Guild Wars 2 combat-log statistics",
	Long: `logdash loads per-player fight statistics from SQLite, CSV, XLSX,
or Parquet sources and runs dashboard-style queries over them:
filtering by player, profession, and date range, deriving new columns
from arithmetic formulas, and aggregating metrics per group.

Examples:
  logdash query stats.db --professions Guardian --group profession --metric dps
  logdash summary stats.db --from 2024-01-01 --to 2024-01-31
  logdash chart stats.db --x date --y dps --color profession`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if outputFormat == "" {
			outputFormat = cfg.OutputFormat
		}

		registry, err = cache.NewRegistry(cfg.CacheCapacity)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Output format: json, jsonl, csv, table (default from config)")

	// Add commands to root
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(columnsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
