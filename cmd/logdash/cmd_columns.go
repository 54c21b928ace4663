package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// columnsCmd lists the columns a source provides
var columnsCmd = &cobra.Command{
	Use:   "columns [source]",
	Short: "List the columns of a stats source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadSource(args[0])
		if err != nil {
			return err
		}
		for _, col := range t.Columns {
			fmt.Println(col)
		}
		return nil
	},
}
