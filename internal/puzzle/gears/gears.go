// Package gears reads part numbers off an engine schematic.
package gears

import (
	"fmt"
	"strconv"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

// Number is a run of digits on one row, spanning columns [Col, End).
type Number struct {
	Value    uint64
	Row, Col int
	End      int
}

// Symbol is any character that is neither a digit nor '.'.
type Symbol struct {
	Char     byte
	Row, Col int
}

// Adjacent reports whether s touches n, diagonals included.
func (n Number) Adjacent(s Symbol) bool {
	return common.IsInRange(n.Row-1, s.Row, n.Row+1) && common.IsInRange(n.Col-1, s.Col, n.End)
}

// Schematic holds every number and symbol of the grid.
type Schematic struct {
	Numbers []Number
	Symbols []Symbol
}

// ParseSchematic scans the grid row by row.
func ParseSchematic(input string) (Schematic, error) {
	var s Schematic

	for row, line := range common.Lines(input) {
		for col := 0; col < len(line); {
			c := line[col]

			switch {
			case isDigit(c):
				end := col
				for end < len(line) && isDigit(line[end]) {
					end++
				}

				v, err := strconv.ParseUint(line[col:end], 10, 64)
				if err != nil {
					return Schematic{}, fmt.Errorf("row %d col %d: %w", row+1, col+1, err)
				}

				s.Numbers = append(s.Numbers, Number{Value: v, Row: row, Col: col, End: end})
				col = end
			case c == '.':
				col++
			default:
				s.Symbols = append(s.Symbols, Symbol{Char: c, Row: row, Col: col})
				col++
			}
		}
	}

	return s, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s Schematic) PartNumbers() []Number {
	var parts []Number

	for _, n := range s.Numbers {
		for _, sym := range s.Symbols {
			if n.Adjacent(sym) {
				parts = append(parts, n)
				break
			}
		}
	}

	return parts
}

// GearRatios returns, for every '*' touching exactly two numbers, the product
// of those numbers.
func (s Schematic) GearRatios() []uint64 {
	var ratios []uint64

	for _, sym := range s.Symbols {
		if sym.Char != '*' {
			continue
		}

		var touching []uint64
		for _, n := range s.Numbers {
			if n.Adjacent(sym) {
				touching = append(touching, n.Value)
			}
		}

		if len(touching) == 2 {
			ratios = append(ratios, touching[0]*touching[1])
		}
	}

	return ratios
}

// Solve sums the part numbers and the gear ratios.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return solver.Answer{}, err
	}

	var parts uint64
	for _, n := range s.PartNumbers() {
		parts += n.Value
	}

	return solver.Answer{Parts: []solver.Part{
		{Name: "valid_part_numbers", Value: parts},
		{Name: "gear_ratios", Value: common.Sum(s.GearRatios())},
	}}, nil
}
