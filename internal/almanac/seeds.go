package almanac

import (
	"fmt"
	"math"
	"slices"
)

// SeedSet is the seed declaration read as (start, length) pairs. Ranges may
// overlap.
type SeedSet []Range

// SeedSetFromPairs groups values into (start, length) pairs. A pair whose
// end would pass math.MaxUint64 is rejected.
func SeedSetFromPairs(values []uint64) (SeedSet, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(values))
	}

	set := make(SeedSet, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		r := Range{Start: values[i], Length: values[i+1]}
		if r.Length > math.MaxUint64-r.Start {
			return nil, fmt.Errorf("%w: %v", ErrRangeOverflow, r)
		}

		set = append(set, r)
	}

	return set, nil
}

// Ranges returns a copy of the ranges in declaration order.
func (s SeedSet) Ranges() []Range {
	return slices.Clone(s)
}

// Contains reports whether any range holds point.
func (s SeedSet) Contains(point uint64) bool {
	for _, r := range s {
		if r.Contains(point) {
			return true
		}
	}

	return false
}

// Boundaries returns the start and exclusive end of every non-empty range,
// sorted and without duplicates.
func (s SeedSet) Boundaries() []uint64 {
	points := make([]uint64, 0, 2*len(s))
	for _, r := range s {
		if r.IsEmpty() {
			continue
		}

		points = append(points, r.Start, r.End())
	}

	slices.Sort(points)

	return slices.Compact(points)
}

// Total returns the summed length of all ranges, counting overlaps twice.
func (s SeedSet) Total() uint64 {
	var total uint64
	for _, r := range s {
		total = addSat(total, r.Length)
	}

	return total
}
