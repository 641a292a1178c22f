package main

import (
	"github.com/spf13/cobra"

	"advent-solver/internal/puzzle"
	"advent-solver/internal/render"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days that can be solved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render.New(cmd.OutOrStdout(), render.DefaultStyles()).Days(puzzle.Registry().All())
	},
}
