package almanac

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
)

// RuleSet holds the rules of one source-to-destination category pair.
//
// Rules are sorted by SourceStart and never overlap in the source domain.
// Destination intervals may overlap; reverse lookups then resolve every point
// to the first matching rule in ascending source order.
type RuleSet struct {
	source      Category
	destination Category
	rules       []Rule

	// inverse is the reverse view of rules: swapped sides, sorted by the
	// destination start, with overlaps already resolved.
	inverse []Rule
}

// NewRuleSet validates and sorts rules for the given category pair.
func NewRuleSet(source, destination Category, rules []Rule) (*RuleSet, error) {
	sorted := slices.Clone(rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SourceStart < sorted[j].SourceStart
	})

	for i, r := range sorted {
		if r.Length == 0 {
			return nil, fmt.Errorf("%s-to-%s: %w: %v", source, destination, ErrEmptyRule, r)
		}

		if r.Length > math.MaxUint64-r.SourceStart || r.Length > math.MaxUint64-r.DestinationStart {
			return nil, fmt.Errorf("%s-to-%s: %w: %v", source, destination, ErrRuleOverflow, r)
		}

		if i > 0 && sorted[i-1].SourceEnd() > r.SourceStart {
			return nil, fmt.Errorf("%s-to-%s: %w: %v and %v",
				source, destination, ErrOverlappingRules, sorted[i-1], r)
		}
	}

	return &RuleSet{
		source:      source,
		destination: destination,
		rules:       sorted,
		inverse:     invertRules(sorted),
	}, nil
}

// Source returns the category the rule set maps from.
func (s *RuleSet) Source() Category { return s.source }

// Destination returns the category the rule set maps to.
func (s *RuleSet) Destination() Category { return s.destination }

// Step returns the category pair of the rule set.
func (s *RuleSet) Step() Step {
	return Step{Source: s.source, Destination: s.destination}
}

// Rules returns a copy of the sorted rules.
func (s *RuleSet) Rules() []Rule {
	return slices.Clone(s.rules)
}

// HasDestinationOverlap reports whether two rules share destination values,
// in which case reverse mapping is not injective.
func (s *RuleSet) HasDestinationOverlap() bool {
	byDestination := slices.Clone(s.rules)
	slices.SortFunc(byDestination, func(a, b Rule) int {
		return cmp.Compare(a.DestinationStart, b.DestinationStart)
	})

	for i := 1; i < len(byDestination); i++ {
		if byDestination[i-1].DestinationEnd() > byDestination[i].DestinationStart {
			return true
		}
	}

	return false
}

// InverseRules returns the reverse view used by MapPointReverse and
// MapRangeReverse: sides swapped, sorted by the new source start, and with
// destination overlaps already resolved to the first rule.
func (s *RuleSet) InverseRules() []Rule {
	return slices.Clone(s.inverse)
}

// MapPoint maps code through the first rule containing it, or returns it
// unchanged when no rule does.
func (s *RuleSet) MapPoint(code uint64) uint64 {
	return lookup(s.rules, code)
}

// MapPointReverse maps a destination value back to its source value.
func (s *RuleSet) MapPointReverse(code uint64) uint64 {
	return lookup(s.inverse, code)
}

// MapRange maps one source interval to the destination intervals covering
// it. Sub-intervals outside every rule are carried through unchanged.
// Output is ordered by the source position it was consumed from.
func (s *RuleSet) MapRange(in Range) []Range {
	return splitRange(in, s.rules)
}

// MapRangeReverse maps one destination interval back to source intervals.
func (s *RuleSet) MapRangeReverse(in Range) []Range {
	return splitRange(in, s.inverse)
}

// MapRanges applies MapRange to each input and concatenates the results.
func (s *RuleSet) MapRanges(in []Range) []Range {
	out := make([]Range, 0, len(in))
	for _, r := range in {
		out = append(out, s.MapRange(r)...)
	}

	return out
}

// MapRangesReverse applies MapRangeReverse to each input.
func (s *RuleSet) MapRangesReverse(in []Range) []Range {
	out := make([]Range, 0, len(in))
	for _, r := range in {
		out = append(out, s.MapRangeReverse(r)...)
	}

	return out
}

// lookup finds the rule containing code by binary search. rules must be
// sorted and non-overlapping.
func lookup(rules []Rule, code uint64) uint64 {
	i := sort.Search(len(rules), func(i int) bool {
		return rules[i].SourceEnd() > code
	})
	if i < len(rules) {
		if mapped, ok := rules[i].MapPoint(code); ok {
			return mapped
		}
	}

	return code
}

// splitRange walks a cursor across in, emitting identity pieces for gaps
// between rules and shifted pieces for the parts rules cover.
func splitRange(in Range, rules []Rule) []Range {
	if in.IsEmpty() {
		return nil
	}

	end := in.End()
	cursor := in.Start
	out := make([]Range, 0, 1)

	i := sort.Search(len(rules), func(i int) bool {
		return rules[i].SourceEnd() > cursor
	})

	for ; i < len(rules) && cursor < end; i++ {
		r := rules[i]
		if r.SourceStart >= end {
			break
		}

		if r.SourceStart > cursor {
			out = append(out, Range{Start: cursor, Length: r.SourceStart - cursor})
			cursor = r.SourceStart
		}

		stop := min(end, r.SourceEnd())
		out = append(out, Range{
			Start:  r.DestinationStart + (cursor - r.SourceStart),
			Length: stop - cursor,
		})
		cursor = stop
	}

	if cursor < end {
		out = append(out, Range{Start: cursor, Length: end - cursor})
	}

	return out
}

// invertRules builds the reverse view of rules sorted by source start. When
// destination intervals overlap, the earlier rule keeps the shared values.
func invertRules(rules []Rule) []Rule {
	var view []Rule

	for _, r := range rules {
		pieces := []Rule{r.inverse()}
		for _, taken := range view {
			pieces = carve(pieces, taken)
		}

		view = append(view, pieces...)
	}

	sort.Slice(view, func(i, j int) bool {
		return view[i].SourceStart < view[j].SourceStart
	})

	return view
}

// carve removes the source interval of taken from every piece.
func carve(pieces []Rule, taken Rule) []Rule {
	var out []Rule

	for _, p := range pieces {
		if p.SourceEnd() <= taken.SourceStart || taken.SourceEnd() <= p.SourceStart {
			out = append(out, p)
			continue
		}

		if p.SourceStart < taken.SourceStart {
			out = append(out, Rule{
				SourceStart:      p.SourceStart,
				DestinationStart: p.DestinationStart,
				Length:           taken.SourceStart - p.SourceStart,
			})
		}

		if pe, te := p.SourceEnd(), taken.SourceEnd(); pe > te {
			out = append(out, Rule{
				SourceStart:      te,
				DestinationStart: p.DestinationStart + (te - p.SourceStart),
				Length:           pe - te,
			})
		}
	}

	return out
}
