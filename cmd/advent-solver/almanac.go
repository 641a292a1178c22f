package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"advent-solver/internal/almanac"
	"advent-solver/internal/common"
	"advent-solver/internal/diagnostic"
	"advent-solver/internal/match"
	"advent-solver/internal/puzzle/seeds"
	"advent-solver/internal/render"
)

// almanacDay is the day whose cached input the almanac commands fall back to.
const almanacDay = 5

var (
	almanacInput  string
	almanacFrom   string
	almanacTo     string
	almanacRanges bool
	almanacDebug  bool
)

var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Query and check almanac category maps",
}

var almanacMapCmd = &cobra.Command{
	Use:   "map [value...]",
	Short: "Map values or ranges from one category to another",
	Long: `Maps the given values, or the almanac's own seeds when none are given.
With --ranges the values are read as start/length pairs. The path between
the categories may be walked backwards.`,
	Example: `  advent-solver almanac map --input day5.txt 79 14 55 13
  advent-solver almanac map --input day5.txt --ranges --from seed --to location
  advent-solver almanac map --input day5.txt --from location --to seed 46`,
	RunE: runAlmanacMap,
}

var almanacCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report structural problems in an almanac",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadAlmanac(cmd.Context())
		if err != nil {
			return err
		}

		diags := almanac.Validate(doc.Graph)

		if err := render.New(cmd.OutOrStdout(), render.DefaultStyles()).Diagnostics(diags); err != nil {
			return err
		}

		if diags.HasErrors() {
			return errors.New("almanac has errors")
		}

		return nil
	},
}

func init() {
	almanacCmd.PersistentFlags().StringVarP(&almanacInput, "input", "i", "", "almanac file (default: cached day 5 input)")

	almanacMapCmd.Flags().StringVar(&almanacFrom, "from", string(seeds.Seed), "source category")
	almanacMapCmd.Flags().StringVar(&almanacTo, "to", string(seeds.Location), "destination category")
	almanacMapCmd.Flags().BoolVar(&almanacRanges, "ranges", false, "read values as start/length pairs")
	almanacMapCmd.Flags().BoolVar(&almanacDebug, "debug", false, "dump the resolved plan to stderr")

	almanacCmd.AddCommand(almanacMapCmd, almanacCheckCmd)
}

func runAlmanacMap(cmd *cobra.Command, args []string) error {
	doc, err := loadAlmanac(cmd.Context())
	if err != nil {
		return err
	}

	from, to := almanac.Category(almanacFrom), almanac.Category(almanacTo)

	for _, c := range []almanac.Category{from, to} {
		if err := checkCategory(doc.Graph, c); err != nil {
			return err
		}
	}

	plan, err := doc.Graph.Resolve(from, to)
	if err != nil {
		return err
	}

	if almanacDebug {
		spew.Fdump(cmd.ErrOrStderr(), plan)
	}

	values := doc.Seeds
	if len(args) > 0 {
		if values, err = common.ParseUints(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to parse values: %w", err)
		}
	}

	r := render.New(cmd.OutOrStdout(), render.DefaultStyles())
	if err := r.Plan(from, to, plan); err != nil {
		return err
	}

	mapper := almanac.NewMapper(doc.Graph)

	if almanacRanges {
		set, err := almanac.SeedSetFromPairs(values)
		if err != nil {
			return err
		}

		out, err := mapper.MapRanges(from, to, set.Ranges())
		if err != nil {
			return err
		}

		return r.Ranges(out)
	}

	out, err := mapper.MapPoints(from, to, values)
	if err != nil {
		return err
	}

	return r.Points(values, out)
}

func loadAlmanac(ctx context.Context) (*almanac.Document, error) {
	var text string

	if almanacInput != "" {
		data, err := os.ReadFile(almanacInput)
		if err != nil {
			return nil, fmt.Errorf("failed to read almanac: %w", err)
		}

		text = string(data)
	} else {
		loader, closeFn, err := openLoader()
		if err != nil {
			return nil, err
		}
		defer closeFn()

		if text, err = loader.Load(ctx, almanacDay); err != nil {
			return nil, explainMiss(err)
		}
	}

	return almanac.Parse(text)
}

// checkCategory rejects names the almanac never mentions, suggesting the
// closest known ones.
func checkCategory(g *almanac.Graph, c almanac.Category) error {
	if g.HasCategory(c) {
		return nil
	}

	names := g.CategoryNames()

	known := make([]string, 0, len(names))
	for _, k := range names {
		known = append(known, string(k))
	}

	d := diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityError,
		Code:        "unknown_category",
		Message:     "category not found in almanac",
		Subject:     string(c),
		Suggestions: match.Suggest(string(c), known, 3, match.DefaultThreshold),
	}

	return errors.New(d.String())
}

