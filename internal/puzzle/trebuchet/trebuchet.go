// Package trebuchet recovers calibration values from amended document lines.
package trebuchet

import (
	"strings"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Calibration returns the two-digit number formed by the first and last
// digit on line. With spelled set, digit words such as "seven" count too and
// may share letters ("eightwo" holds 8 then 2). ok is false when the line has
// no digit at all.
func Calibration(line string, spelled bool) (value uint64, ok bool) {
	first, last := -1, -1

	for i := range len(line) {
		d := digitAt(line, i, spelled)
		if d < 0 {
			continue
		}

		if first < 0 {
			first = d
		}

		last = d
	}

	if first < 0 {
		return 0, false
	}

	return uint64(first*10 + last), true
}

func digitAt(line string, i int, spelled bool) int {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}

	if spelled {
		for n, word := range digitWords {
			if strings.HasPrefix(line[i:], word) {
				return n + 1
			}
		}
	}

	return -1
}

// Solve sums the calibration values, first with digits only, then with
// spelled digits.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	var plain, spelled uint64

	for _, line := range common.Lines(input) {
		if v, ok := Calibration(line, false); ok {
			plain += v
		}

		if v, ok := Calibration(line, true); ok {
			spelled += v
		}
	}

	return solver.Answer{Parts: []solver.Part{
		{Name: "sum", Value: plain},
		{Name: "better_sum", Value: spelled},
	}}, nil
}
