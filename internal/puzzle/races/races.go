// Package races counts the ways to win boat races.
package races

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

var ErrMalformedSheet = errors.New("malformed race sheet")

// Race is one record: the time allowed and the distance to beat.
type Race struct {
	Time     uint64
	Distance uint64
}

// beats reports whether holding the button for hold ms travels further than
// the record. The distance is compared as a 128-bit product.
func (r Race) beats(hold uint64) bool {
	hi, lo := bits.Mul64(hold, r.Time-hold)

	return hi != 0 || lo > r.Distance
}

// WaysToWin counts the hold times that beat the record. The distance curve
// is symmetric around Time/2, so it is enough to find the first winning hold.
func (r Race) WaysToWin() uint64 {
	half := r.Time / 2
	if !r.beats(half) {
		return 0
	}

	lo, hi := uint64(0), half
	for lo < hi {
		mid := lo + (hi-lo)/2
		if r.beats(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return r.Time - 2*lo + 1
}

// ParseRaces reads the Time and Distance lines column by column.
func ParseRaces(input string) ([]Race, error) {
	timeLine, distanceLine, err := sheet(input)
	if err != nil {
		return nil, err
	}

	times, err := common.ParseUints(timeLine)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSheet, err)
	}

	distances, err := common.ParseUints(distanceLine)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSheet, err)
	}

	if len(times) != len(distances) {
		return nil, fmt.Errorf("%w: %d times but %d distances", ErrMalformedSheet, len(times), len(distances))
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: distances[i]}
	}

	return races, nil
}

// ParseKerned reads the sheet as a single race whose numbers were split by
// bad kerning.
func ParseKerned(input string) (Race, error) {
	timeLine, distanceLine, err := sheet(input)
	if err != nil {
		return Race{}, err
	}

	t, err := strconv.ParseUint(strings.Join(strings.Fields(timeLine), ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("%w: %w", ErrMalformedSheet, err)
	}

	d, err := strconv.ParseUint(strings.Join(strings.Fields(distanceLine), ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("%w: %w", ErrMalformedSheet, err)
	}

	return Race{Time: t, Distance: d}, nil
}

func sheet(input string) (times, distances string, err error) {
	for _, line := range common.Lines(input) {
		switch {
		case strings.HasPrefix(line, "Time:"):
			times = common.After(line, ":")
		case strings.HasPrefix(line, "Distance:"):
			distances = common.After(line, ":")
		}
	}

	if times == "" || distances == "" {
		return "", "", fmt.Errorf("%w: need Time and Distance lines", ErrMalformedSheet)
	}

	return times, distances, nil
}

// Solve multiplies the ways to win each race, then counts the ways to win the
// kerned race.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return solver.Answer{}, err
	}

	single, err := ParseKerned(input)
	if err != nil {
		return solver.Answer{}, err
	}

	ways := make([]uint64, len(races))
	for i, r := range races {
		ways[i] = r.WaysToWin()
	}

	return solver.Answer{Parts: []solver.Part{
		{Name: "winning_counts", Value: common.Product(ways)},
		{Name: "single_winning", Value: single.WaysToWin()},
	}}, nil
}
