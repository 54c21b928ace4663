package main

import (
	"github.com/spf13/cobra"

	"logdash/internal/query"
	"logdash/internal/table"
)

// summaryCmd prints headline totals for a source
var summaryCmd = &cobra.Command{
	Use:   "summary [source]",
	Short: "Show headline totals for a stats source",
	Long: `Loads a stats source, applies the filter flags, and prints the
headline numbers the dashboards show above every chart: total fights,
total fight duration in seconds, and the number of distinct players.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	addFilterFlags(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	t, err := loadSource(args[0])
	if err != nil {
		return err
	}

	s := query.Summarize(t)
	result := table.New(
		[]string{"total_fights", "total_duration", "unique_players"},
		[]table.Row{{
			"total_fights":   s.TotalFights,
			"total_duration": s.TotalDuration,
			"unique_players": int64(s.UniquePlayers),
		}},
	)
	return render(result)
}
