package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"logdash/internal/output"
	"logdash/internal/query"
	"logdash/internal/reader"
	"logdash/internal/table"
)

// Filter flags shared by the query, summary, and chart commands.
var (
	filterPlayers     []string
	filterProfessions []string
	filterFrom        string
	filterTo          string
	filterDate        string
)

// addFilterFlags registers the shared filter flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&filterPlayers, "players", nil, "Restrict to these player names")
	cmd.Flags().StringSliceVar(&filterProfessions, "professions", nil, "Restrict to these professions")
	cmd.Flags().StringVar(&filterFrom, "from", "", "Start of the date range (inclusive, 2006-01-02)")
	cmd.Flags().StringVar(&filterTo, "to", "", "End of the date range (inclusive, 2006-01-02)")
	cmd.Flags().StringVar(&filterDate, "date", "", "Select exactly one calendar date (2006-01-02)")
}

// loadSource loads the source file, registers it in the cache, and
// applies the shared filter flags.
func loadSource(path string) (*table.Table, error) {
	start := time.Now()
	t, err := reader.LoadStats(path, cfg.StatsTable)
	if err != nil {
		return nil, err
	}
	id := registry.Register(path, t)
	logger.Info("source loaded",
		zap.String("source", path),
		zap.String("id", id),
		zap.Int("rows", t.Len()),
		zap.Duration("elapsed", time.Since(start)))

	spec, err := filterSpec()
	if err != nil {
		return nil, err
	}
	if spec.IsEmpty() {
		return t, nil
	}
	filtered := query.Filter(t, spec)
	logger.Debug("filter applied",
		zap.Int("rows_in", t.Len()),
		zap.Int("rows_out", filtered.Len()))
	return filtered, nil
}

// filterSpec builds a FilterSpec from the shared filter flags.
func filterSpec() (query.FilterSpec, error) {
	spec := query.FilterSpec{
		Players:     filterPlayers,
		Professions: filterProfessions,
	}

	if filterDate != "" {
		if filterFrom != "" || filterTo != "" {
			return spec, fmt.Errorf("--date cannot be combined with --from/--to")
		}
		day, err := parseDateFlag("date", filterDate)
		if err != nil {
			return spec, err
		}
		// A single selected date matches exactly that day.
		spec.From, spec.To = day, day
		return spec, nil
	}

	var err error
	if filterFrom != "" {
		if spec.From, err = parseDateFlag("from", filterFrom); err != nil {
			return spec, err
		}
	}
	if filterTo != "" {
		if spec.To, err = parseDateFlag("to", filterTo); err != nil {
			return spec, err
		}
	}
	return spec, nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: want 2006-01-02", name, value)
	}
	return table.Normalize(day), nil
}

// applyDerivations evaluates each --derive flag of the form name=expr,
// in order, so later columns can use earlier ones.
func applyDerivations(t *table.Table, derivations []string) (*table.Table, error) {
	for _, d := range derivations {
		name, expr, ok := strings.Cut(d, "=")
		name = strings.TrimSpace(name)
		expr = strings.TrimSpace(expr)
		if !ok || name == "" || expr == "" {
			return nil, fmt.Errorf("invalid --derive %q: want name=expression", d)
		}
		derived, err := query.Derive(t, name, expr)
		if err != nil {
			return nil, err
		}
		logger.Debug("column derived", zap.String("column", name), zap.String("expression", expr))
		t = derived
	}
	return t, nil
}

// render writes a table to stdout in the selected output format.
func render(t *table.Table) error {
	formatter, err := output.New(outputFormat)
	if err != nil {
		return err
	}
	return formatter.Format(os.Stdout, t)
}
