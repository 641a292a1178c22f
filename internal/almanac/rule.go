package almanac

import (
	"fmt"
	"math"
)

// Category names one stage of the almanac chain, e.g. "seed" or "location".
type Category string

// Rule maps [SourceStart, SourceStart+Length) onto
// [DestinationStart, DestinationStart+Length) by a constant offset.
type Rule struct {
	SourceStart      uint64
	DestinationStart uint64
	Length           uint64
}

// SourceEnd returns the exclusive end of the source interval.
func (r Rule) SourceEnd() uint64 {
	return addSat(r.SourceStart, r.Length)
}

// DestinationEnd returns the exclusive end of the destination interval.
func (r Rule) DestinationEnd() uint64 {
	return addSat(r.DestinationStart, r.Length)
}

// MapPoint returns the destination of code when the rule's source interval
// contains it.
func (r Rule) MapPoint(code uint64) (uint64, bool) {
	if code < r.SourceStart || code >= r.SourceEnd() {
		return 0, false
	}

	return r.DestinationStart + (code - r.SourceStart), true
}

// MapPointReverse is MapPoint over the destination interval.
func (r Rule) MapPointReverse(code uint64) (uint64, bool) {
	if code < r.DestinationStart || code >= r.DestinationEnd() {
		return 0, false
	}

	return r.SourceStart + (code - r.DestinationStart), true
}

// inverse swaps the source and destination sides.
func (r Rule) inverse() Rule {
	return Rule{SourceStart: r.DestinationStart, DestinationStart: r.SourceStart, Length: r.Length}
}

func (r Rule) String() string {
	return fmt.Sprintf("[%d,+%d)->%d", r.SourceStart, r.Length, r.DestinationStart)
}

// Range is the half-open interval [Start, Start+Length). A zero Length is an
// empty range. Start+Length must not exceed math.MaxUint64.
type Range struct {
	Start  uint64
	Length uint64
}

// End returns the exclusive end of the range, saturating at math.MaxUint64.
func (r Range) End() uint64 {
	return addSat(r.Start, r.Length)
}

// IsEmpty reports whether the range holds no values.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains reports whether point lies inside the range.
func (r Range) Contains(point uint64) bool {
	return r.Start <= point && point < r.End()
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,+%d)", r.Start, r.Length)
}

func addSat(a, b uint64) uint64 {
	if b > math.MaxUint64-a {
		return math.MaxUint64
	}

	return a + b
}
