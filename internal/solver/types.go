package solver

import (
	"time"

	"go.uber.org/zap"

	"advent-solver/internal/diagnostic"
	"advent-solver/internal/logging"
)

// Strategy values understood by puzzles that offer more than one method.
const (
	StrategyDefault  = ""
	StrategyRange    = "range"
	StrategyBoundary = "boundary"
)

// Part is one named result of a puzzle.
type Part struct {
	Name  string
	Value uint64
}

// Answer is everything a puzzle reports for one input.
type Answer struct {
	Parts []Part
	// Diagnostics carries notes that do not prevent an answer, such as a
	// part that could not be computed for this input.
	Diagnostics diagnostic.Diagnostics
}

// Value returns the value of the named part.
func (a Answer) Value(name string) (uint64, bool) {
	for _, p := range a.Parts {
		if p.Name == name {
			return p.Value, true
		}
	}

	return 0, false
}

// Options tune a single solve.
type Options struct {
	Strategy string
	Logger   *zap.Logger
}

// Log returns the configured logger or a no-op one.
func (o Options) Log() *zap.Logger {
	return logging.OrNop(o.Logger)
}

// Func solves one puzzle input.
type Func func(input string, opts Options) (Answer, error)

// Day describes a registered puzzle.
type Day struct {
	Number int
	Name   string
	Title  string
	Solve  Func
}

// Report is the outcome of solving one day.
type Report struct {
	Day     Day
	Answer  Answer
	Elapsed time.Duration
}
