package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent-solver/internal/puzzle"
	"advent-solver/internal/render"
	"advent-solver/internal/solver"
	"advent-solver/internal/watch"
)

var (
	solveInput    string
	solveAll      bool
	solveStrategy string
	solveWatch    bool
)

var strategies = []string{solver.StrategyRange, solver.StrategyBoundary}

var solveCmd = &cobra.Command{
	Use:   "solve [day...]",
	Short: "Solve one or more days",
	Long: `Solves the given days, named by number or name ("5" or "seeds").

Each input comes from --input, the cache, or the website, in that order.
Several days are solved concurrently.`,
	Example: `  advent-solver solve 5
  advent-solver solve seeds --input day5.txt --strategy boundary
  advent-solver solve --all`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "read the input from this file (single day only)")
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "solve every registered day")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", solver.StrategyRange, "day 5 strategy: range or boundary")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "w", false, "re-solve whenever --input changes")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if !slices.Contains(strategies, solveStrategy) {
		return fmt.Errorf("unknown strategy %q (valid: %v)", solveStrategy, strategies)
	}

	days, err := selectDays(args)
	if err != nil {
		return err
	}

	if solveInput != "" && len(days) != 1 {
		return errors.New("--input needs exactly one day")
	}

	if solveWatch && solveInput == "" {
		return errors.New("--watch needs --input")
	}

	if !solveWatch {
		return solveOnce(cmd, days)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := solveOnce(cmd, days); err != nil {
		logger.Error("Solve failed", zap.Error(err))
	}

	w, err := watch.New([]string{solveInput}, watch.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("Watching input", zap.String("path", solveInput))

	return w.Run(ctx, func(context.Context, string) {
		if err := solveOnce(cmd, days); err != nil {
			logger.Error("Solve failed", zap.Error(err))
		}
	})
}

func selectDays(args []string) ([]solver.Day, error) {
	registry := puzzle.Registry()

	if solveAll {
		return registry.All(), nil
	}

	if len(args) == 0 {
		return nil, errors.New("name at least one day, or pass --all")
	}

	days := make([]solver.Day, 0, len(args))
	for _, arg := range args {
		d, err := registry.Lookup(arg)
		if err != nil {
			return nil, err
		}

		days = append(days, d)
	}

	return days, nil
}

func solveOnce(cmd *cobra.Command, days []solver.Day) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Solve.Timeout)
	defer cancel()

	jobs, err := loadJobs(ctx, days)
	if err != nil {
		return err
	}

	runner := &solver.Runner{
		Parallelism: cfg.Solve.Parallelism,
		Options:     solver.Options{Strategy: solveStrategy, Logger: logger},
	}

	reports, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	return render.New(cmd.OutOrStdout(), render.DefaultStyles()).Reports(reports)
}

func loadJobs(ctx context.Context, days []solver.Day) ([]solver.Job, error) {
	if solveInput != "" {
		data, err := os.ReadFile(solveInput)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		return []solver.Job{{Day: days[0], Input: string(data)}}, nil
	}

	loader, closeFn, err := openLoader()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	jobs := make([]solver.Job, 0, len(days))
	for _, d := range days {
		input, err := loader.Load(ctx, d.Number)
		if err != nil {
			return nil, explainMiss(err)
		}

		jobs = append(jobs, solver.Job{Day: d, Input: input})
	}

	return jobs, nil
}
