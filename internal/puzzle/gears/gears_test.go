package gears

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent-solver/internal/solver"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestParseSchematic(t *testing.T) {
	t.Parallel()

	s, err := ParseSchematic(example)
	require.NoError(t, err)

	assert.Len(t, s.Numbers, 10)
	assert.Len(t, s.Symbols, 6)
	assert.Equal(t, Number{Value: 467, Row: 0, Col: 0, End: 3}, s.Numbers[0])
	assert.Equal(t, Symbol{Char: '*', Row: 1, Col: 3}, s.Symbols[0])
}

func TestNumber_Adjacent(t *testing.T) {
	t.Parallel()

	n := Number{Value: 35, Row: 2, Col: 2, End: 4}

	assert.True(t, n.Adjacent(Symbol{Row: 1, Col: 1}))
	assert.True(t, n.Adjacent(Symbol{Row: 3, Col: 4}))
	assert.True(t, n.Adjacent(Symbol{Row: 2, Col: 4}))
	assert.False(t, n.Adjacent(Symbol{Row: 2, Col: 5}))
	assert.False(t, n.Adjacent(Symbol{Row: 0, Col: 2}))
}

func TestSolve(t *testing.T) {
	t.Parallel()

	answer, err := Solve(example, solver.Options{})
	require.NoError(t, err)

	assert.Equal(t, []solver.Part{
		{Name: "valid_part_numbers", Value: 4361},
		{Name: "gear_ratios", Value: 467835},
	}, answer.Parts)
}

func TestGearRatios_NeedsExactlyTwo(t *testing.T) {
	t.Parallel()

	s, err := ParseSchematic("2.3\n.*.\n4..\n")
	require.NoError(t, err)
	assert.Empty(t, s.GearRatios())
	assert.Len(t, s.PartNumbers(), 3)
}
