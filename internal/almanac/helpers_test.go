package almanac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const exampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func mustParse(t *testing.T, input string) *Document {
	t.Helper()

	doc, err := Parse(input)
	require.NoError(t, err)

	return doc
}

func mustRuleSet(t *testing.T, source, destination Category, rules ...Rule) *RuleSet {
	t.Helper()

	set, err := NewRuleSet(source, destination, rules)
	require.NoError(t, err)

	return set
}

func mustGraph(t *testing.T, sets ...*RuleSet) *Graph {
	t.Helper()

	g, err := NewGraph(sets...)
	require.NoError(t, err)

	return g
}

// chain builds identity rule sets linking the given categories in order.
func chain(t *testing.T, categories ...Category) []*RuleSet {
	t.Helper()

	var sets []*RuleSet
	for i := 1; i < len(categories); i++ {
		sets = append(sets, mustRuleSet(t, categories[i-1], categories[i]))
	}

	return sets
}

func totalLength(ranges []Range) uint64 {
	var total uint64
	for _, r := range ranges {
		total += r.Length
	}

	return total
}
