// Package seeds finds the lowest location for the seeds listed in an
// almanac.
package seeds

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"advent-solver/internal/almanac"
	"advent-solver/internal/solver"
)

const (
	Seed     almanac.Category = "seed"
	Location almanac.Category = "location"
)

var (
	ErrNoSeeds      = errors.New("almanac lists no seeds")
	ErrNoCandidates = errors.New("no boundary candidate lies inside the seed ranges")
)

// ClosestLocation maps each listed seed number to a location and returns the
// lowest.
func ClosestLocation(doc *almanac.Document) (uint64, error) {
	if len(doc.Seeds) == 0 {
		return 0, ErrNoSeeds
	}

	locations, err := almanac.NewMapper(doc.Graph).MapPoints(Seed, Location, doc.Seeds)
	if err != nil {
		return 0, fmt.Errorf("failed to map seeds: %w", err)
	}

	return slices.Min(locations), nil
}

// LowestRangeLocation reads the seeds line as ranges, maps them all the way
// to location and returns the lowest start.
func LowestRangeLocation(doc *almanac.Document) (uint64, error) {
	set, err := doc.SeedSet()
	if err != nil {
		return 0, err
	}

	locations, err := almanac.NewMapper(doc.Graph).MapRanges(Seed, Location, set.Ranges())
	if err != nil {
		return 0, fmt.Errorf("failed to map seed ranges: %w", err)
	}

	lowest, ok := almanac.MinStart(locations)
	if !ok {
		return 0, ErrNoSeeds
	}

	return lowest, nil
}

// BoundaryLowest checks only the seeds where the seed-to-location mapping can
// change slope. Those are the seed range bounds plus every seed that lands on
// a rule's source start or end at some step of the plan. Candidates outside
// the seed ranges are discarded.
func BoundaryLowest(doc *almanac.Document) (uint64, error) {
	set, err := doc.SeedSet()
	if err != nil {
		return 0, err
	}

	plan, err := doc.Graph.Resolve(Seed, Location)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve seeds: %w", err)
	}

	// stages[i] holds the rules applied at step i, oriented in the direction
	// the plan applies them.
	stages := make([][]almanac.Rule, len(plan.Steps))
	for i, step := range plan.Steps {
		rs, err := doc.Graph.RuleSet(step.Source, step.Destination)
		if err != nil {
			return 0, err
		}

		stages[i] = rs.Rules()
		if plan.Reversed {
			stages[i] = rs.InverseRules()
		}
	}

	candidates := set.Boundaries()

	for i, rules := range stages {
		points := make([]uint64, 0, 2*len(rules))
		for _, r := range rules {
			points = append(points, r.SourceStart, r.SourceEnd())
		}

		for j := i - 1; j >= 0; j-- {
			points = preimages(stages[j], points)
		}

		candidates = append(candidates, points...)
	}

	candidates = slices.DeleteFunc(candidates, func(c uint64) bool { return !set.Contains(c) })
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	locations, err := almanac.NewMapper(doc.Graph).MapPoints(Seed, Location, candidates)
	if err != nil {
		return 0, fmt.Errorf("failed to map candidates: %w", err)
	}

	return slices.Min(locations), nil
}

// preimages returns every input that rules send to one of points. A point is
// its own preimage when no rule covers it, and it may also be reached through
// any rule whose destination holds it.
func preimages(rules []almanac.Rule, points []uint64) []uint64 {
	out := make([]uint64, 0, len(points))

	for _, p := range points {
		covered := false
		for _, r := range rules {
			if _, ok := r.MapPoint(p); ok {
				covered = true
			}

			if src, ok := r.MapPointReverse(p); ok {
				out = append(out, src)
			}
		}

		if !covered {
			out = append(out, p)
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// Solve answers both parts. With the boundary strategy the boundary result is
// reported too, and a mismatch with the range result is flagged.
func Solve(input string, opts solver.Options) (solver.Answer, error) {
	doc, err := almanac.Parse(input)
	if err != nil {
		return solver.Answer{}, err
	}

	var answer solver.Answer
	answer.Diagnostics.Merge(almanac.Validate(doc.Graph))

	if err := answer.Diagnostics.Error(); err != nil {
		return solver.Answer{}, err
	}

	closest, err := ClosestLocation(doc)
	if err != nil {
		return solver.Answer{}, err
	}

	lowest, err := LowestRangeLocation(doc)
	if err != nil {
		return solver.Answer{}, err
	}

	answer.Parts = []solver.Part{
		{Name: "closest_location", Value: closest},
		{Name: "real_location", Value: lowest},
	}

	switch opts.Strategy {
	case solver.StrategyDefault, solver.StrategyRange:
	case solver.StrategyBoundary:
		boundary, err := BoundaryLowest(doc)
		if err != nil {
			return solver.Answer{}, err
		}

		answer.Parts = append(answer.Parts, solver.Part{Name: "boundary_location", Value: boundary})

		if boundary != lowest {
			opts.Log().Warn("Boundary strategy disagrees with range mapping",
				zap.Uint64("boundary", boundary), zap.Uint64("range", lowest))
			answer.Diagnostics.AddWarning("strategy_mismatch",
				fmt.Sprintf("boundary strategy found %d, range mapping found %d", boundary, lowest),
				"real_location")
		}
	default:
		return solver.Answer{}, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}

	return answer, nil
}
