package main

import (
	"github.com/spf13/cobra"

	"logdash/internal/query"
	"logdash/internal/table"
)

var (
	chartX      string
	chartY      string
	chartColor  string
	chartSize   string
	chartDerive []string
	chartRates  bool
)

// chartCmd extracts the column projections a chart renderer needs
var chartCmd = &cobra.Command{
	Use:   "chart [source]",
	Short: "Project columns for scatter and bar charts",
	Long: `Loads a stats source and emits the per-row values for the requested
chart channels. --x and --y are required; --color and --size are
optional. The output has one row per record and one column per
channel, ready to feed a plotting frontend.

Example:
  logdash chart stats.db --rates --x date --y dps --color profession -f jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	addFilterFlags(chartCmd)
	chartCmd.Flags().StringVar(&chartX, "x", "", "Column for the x axis (required)")
	chartCmd.Flags().StringVar(&chartY, "y", "", "Column for the y axis (required)")
	chartCmd.Flags().StringVar(&chartColor, "color", "", "Column for the color channel")
	chartCmd.Flags().StringVar(&chartSize, "size", "", "Column for the marker size channel")
	chartCmd.Flags().StringSliceVar(&chartDerive, "derive", nil, "Derive a column: name=expression (repeatable)")
	chartCmd.Flags().BoolVar(&chartRates, "rates", false, "Derive the standard per-second rate columns (dps, cps, rps, hps)")
	chartCmd.MarkFlagRequired("x")
	chartCmd.MarkFlagRequired("y")
}

func runChart(cmd *cobra.Command, args []string) error {
	t, err := loadSource(args[0])
	if err != nil {
		return err
	}

	if chartRates {
		if t, err = query.DeriveRates(t); err != nil {
			return err
		}
	}
	if t, err = applyDerivations(t, chartDerive); err != nil {
		return err
	}

	p, err := query.Project(t, query.ProjectionSpec{
		X:     chartX,
		Y:     chartY,
		Color: chartColor,
		Size:  chartSize,
	})
	if err != nil {
		return err
	}

	columns := []string{chartX, chartY}
	channels := [][]interface{}{p.X, p.Y}
	if chartColor != "" {
		columns = append(columns, chartColor)
		channels = append(channels, p.Color)
	}
	if chartSize != "" {
		columns = append(columns, chartSize)
		channels = append(channels, p.Size)
	}

	rows := make([]table.Row, len(p.X))
	for i := range rows {
		row := make(table.Row, len(columns))
		for j, col := range columns {
			row[col] = channels[j][i]
		}
		rows[i] = row
	}
	return render(table.New(columns, rows))
}
