package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent-solver/internal/almanac"
	"advent-solver/internal/solver"
)

const example = `seeds: 79 14 55 13

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

func parse(t *testing.T, input string) *almanac.Document {
	t.Helper()

	doc, err := almanac.Parse(input)
	require.NoError(t, err)

	return doc
}

func TestClosestLocation(t *testing.T) {
	t.Parallel()

	got, err := ClosestLocation(parse(t, example))
	require.NoError(t, err)
	assert.Equal(t, uint64(35), got)
}

func TestLowestRangeLocation(t *testing.T) {
	t.Parallel()

	got, err := LowestRangeLocation(parse(t, example))
	require.NoError(t, err)
	assert.Equal(t, uint64(46), got)
}

func TestBoundaryLowest(t *testing.T) {
	t.Parallel()

	got, err := BoundaryLowest(parse(t, example))
	require.NoError(t, err)
	assert.Equal(t, uint64(46), got)
}

func TestNoSeeds(t *testing.T) {
	t.Parallel()

	doc := parse(t, "seeds:\n\nseed-to-location map:\n0 10 5\n")

	_, err := ClosestLocation(doc)
	require.ErrorIs(t, err, ErrNoSeeds)

	_, err = LowestRangeLocation(doc)
	require.ErrorIs(t, err, ErrNoSeeds)
}

func TestOddSeedCount(t *testing.T) {
	t.Parallel()

	doc := parse(t, "seeds: 1 2 3\n\nseed-to-location map:\n0 10 5\n")

	_, err := LowestRangeLocation(doc)
	require.ErrorIs(t, err, almanac.ErrOddSeedCount)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	answer, err := Solve(example, solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, []solver.Part{
		{Name: "closest_location", Value: 35},
		{Name: "real_location", Value: 46},
	}, answer.Parts)

	answer, err = Solve(example, solver.Options{Strategy: solver.StrategyBoundary})
	require.NoError(t, err)

	boundary, ok := answer.Value("boundary_location")
	require.True(t, ok)
	assert.Equal(t, uint64(46), boundary)
	assert.Empty(t, answer.Diagnostics.Warnings)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := Solve(example, solver.Options{Strategy: "guess"})
	require.Error(t, err)

	_, err = Solve("seeds: 1 2\n\nsoil-to-location map:\n0 10 5\n", solver.Options{})
	require.ErrorIs(t, err, almanac.ErrNoPath)

	cyclic := "seeds: 1 2\n\nseed-to-soil map:\n0 10 5\n\nsoil-to-seed map:\n0 10 5\n"
	_, err = Solve(cyclic, solver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph_cycle")
}

func TestBoundaryLowest_IdentityGaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{
			name:  "lowest after a rule",
			input: "seeds: 5 10\n\nseed-to-location map:\n100 0 10\n",
			want:  10,
		},
		{
			name: "gap reached through an earlier step",
			input: "seeds: 0 20\n\nseed-to-soil map:\n100 0 10\n\n" +
				"soil-to-location map:\n0 10 5\n",
			want: 0,
		},
		{
			name: "gap value reached through a rule",
			input: "seeds: 0 5\n\nseed-to-soil map:\n20 0 5\n\n" +
				"soil-to-location map:\n50 0 22\n",
			want: 22,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, tt.input)

			ranged, err := LowestRangeLocation(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ranged)

			boundary, err := BoundaryLowest(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, boundary)

			answer, err := Solve(tt.input, solver.Options{Strategy: solver.StrategyBoundary})
			require.NoError(t, err)
			assert.Empty(t, answer.Diagnostics.Warnings)
		})
	}
}
