package almanac

import "slices"

// Mapper folds points and ranges along resolved plans. It holds no state of
// its own and may be used concurrently.
type Mapper struct {
	graph *Graph
}

// NewMapper returns a Mapper reading from g.
func NewMapper(g *Graph) Mapper {
	return Mapper{graph: g}
}

// MapRanges moves ranges from one category to another. Empty ranges are
// dropped; no merging happens between the results of different inputs.
func (m Mapper) MapRanges(from, to Category, ranges []Range) ([]Range, error) {
	plan, err := m.graph.Resolve(from, to)
	if err != nil {
		return nil, err
	}

	out := slices.DeleteFunc(slices.Clone(ranges), Range.IsEmpty)

	for _, step := range plan.Steps {
		set, err := m.graph.RuleSet(step.Source, step.Destination)
		if err != nil {
			return nil, err
		}

		if plan.Reversed {
			out = set.MapRangesReverse(out)
		} else {
			out = set.MapRanges(out)
		}
	}

	return out, nil
}

// MapPoints moves individual values from one category to another.
func (m Mapper) MapPoints(from, to Category, codes []uint64) ([]uint64, error) {
	plan, err := m.graph.Resolve(from, to)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(codes)

	for _, step := range plan.Steps {
		set, err := m.graph.RuleSet(step.Source, step.Destination)
		if err != nil {
			return nil, err
		}

		for i, code := range out {
			if plan.Reversed {
				out[i] = set.MapPointReverse(code)
			} else {
				out[i] = set.MapPoint(code)
			}
		}
	}

	return out, nil
}

// MinStart returns the smallest start among non-empty ranges.
func MinStart(ranges []Range) (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)

	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}

		if !found || r.Start < lowest {
			lowest = r.Start
			found = true
		}
	}

	return lowest, found
}
