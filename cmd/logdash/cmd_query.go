package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"logdash/internal/query"
)

var (
	queryDerive []string
	queryRates  bool
	queryGroup  []string
	queryMetric string
	queryReduce string
	queryLimit  int
)

// queryCmd runs the filter/derive/aggregate pipeline over a source
var queryCmd = &cobra.Command{
	Use:   "query [source]",
	Short: "Filter, derive, and aggregate player statistics",
	Long: `Loads a stats source and runs the query pipeline over it.

Rows can be restricted by player, profession, and date range. New
columns are derived from arithmetic formulas over existing numeric
columns, e.g. --derive "dps=damage / duration". With --group and
--metric the result is one row per group, reduced with --reduce
(mean by default).

Examples:
  logdash query stats.db --professions Guardian,Firebrand
  logdash query stats.db --derive "dps=damage / duration" --group profession --metric dps
  logdash query week.csv --date 2024-01-15 --group name --metric damage --reduce sum`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	addFilterFlags(queryCmd)
	queryCmd.Flags().StringSliceVar(&queryDerive, "derive", nil, "Derive a column: name=expression (repeatable)")
	queryCmd.Flags().BoolVar(&queryRates, "rates", false, "Derive the standard per-second rate columns (dps, cps, rps, hps)")
	queryCmd.Flags().StringSliceVar(&queryGroup, "group", nil, "Group by these columns")
	queryCmd.Flags().StringVar(&queryMetric, "metric", "", "Metric column to reduce per group")
	queryCmd.Flags().StringVar(&queryReduce, "reduce", "", "Reducer: mean, sum, min, max, count (default mean)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Keep only the first N result rows")
}

func runQuery(cmd *cobra.Command, args []string) error {
	t, err := loadSource(args[0])
	if err != nil {
		return err
	}

	if queryRates {
		if t, err = query.DeriveRates(t); err != nil {
			return err
		}
	}
	if t, err = applyDerivations(t, queryDerive); err != nil {
		return err
	}

	if len(queryGroup) > 0 || queryMetric != "" {
		if queryMetric == "" {
			return fmt.Errorf("--group requires --metric")
		}
		if len(queryGroup) == 0 {
			return fmt.Errorf("--metric requires --group")
		}
		if t, err = query.Aggregate(t, queryGroup, queryMetric, query.Reducer(queryReduce)); err != nil {
			return err
		}
		logger.Debug("aggregated",
			zap.Strings("group", queryGroup),
			zap.String("metric", queryMetric),
			zap.Int("groups", t.Len()))
	}

	if queryLimit > 0 && t.Len() > queryLimit {
		t = t.WithRows(t.Rows[:queryLimit])
	}

	return render(t)
}
