package solver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job pairs a day with the input to solve.
type Job struct {
	Day   Day
	Input string
}

// Runner solves jobs concurrently. Each job works on its own input, so no
// state is shared between goroutines.
type Runner struct {
	// Parallelism bounds the number of concurrent solves; values below 1
	// mean one at a time.
	Parallelism int
	Options     Options
}

// Run solves every job and returns the reports in job order. The first
// failure cancels jobs that have not started yet.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Report, error) {
	log := r.Options.Log()
	reports := make([]Report, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Parallelism))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()

			answer, err := job.Day.Solve(job.Input, r.Options)
			if err != nil {
				return fmt.Errorf("day %d (%s): %w", job.Day.Number, job.Day.Name, err)
			}

			elapsed := time.Since(start)
			log.Debug("Solved day",
				zap.Int("day", job.Day.Number),
				zap.String("name", job.Day.Name),
				zap.Duration("elapsed", elapsed))

			reports[i] = Report{Day: job.Day, Answer: answer, Elapsed: elapsed}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
