package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"advent-solver/internal/fetch"
	"advent-solver/internal/puzzle"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <day>",
	Short: "Download and cache a day's input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Session == "" {
			return fetch.ErrNoSession
		}

		day, err := strconv.Atoi(args[0])
		if err != nil {
			d, lookupErr := puzzle.Registry().Lookup(args[0])
			if lookupErr != nil {
				return lookupErr
			}

			day = d.Number
		}

		loader, closeFn, err := openLoader()
		if err != nil {
			return err
		}
		defer closeFn()

		load := loader.Load
		if fetchForce {
			load = loader.Refresh
		}

		body, err := load(cmd.Context(), day)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "day %d: %d bytes cached in %s (%s)\n", day, len(body), cfg.Cache.Dir, cfg.Cache.Backend)

		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "download even when cached")
}
