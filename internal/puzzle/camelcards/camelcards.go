// Package camelcards ranks hands of Camel Cards and totals their winnings.
package camelcards

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

//go:generate go tool stringer -type=HandType

// HandType orders hands before their cards are compared.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	labels      = "23456789TJQKA"
	jokerLabels = "J23456789TQKA"
	handSize    = 5
)

var ErrMalformedHand = errors.New("malformed hand")

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards string
	Bid   uint64
}

// ParseHands reads one "32T3K 765" hand per line.
func ParseHands(input string) ([]Hand, error) {
	var hands []Hand

	for _, line := range common.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHand, line)
		}

		cards := fields[0]
		if len(cards) != handSize || strings.Trim(cards, labels) != "" {
			return nil, fmt.Errorf("%w: %q: need %d cards from %s", ErrMalformedHand, cards, handSize, labels)
		}

		bid, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrMalformedHand, line, err)
		}

		hands = append(hands, Hand{Cards: cards, Bid: bid})
	}

	return hands, nil
}

// Type classifies cards. With jokers set, every J joins the largest group of
// the other cards.
func Type(cards string, jokers bool) HandType {
	counts := make(map[rune]int, handSize)
	wild := 0

	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}

		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}

	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })

	if len(groups) == 0 {
		return FiveOfAKind
	}

	groups[0] += wild
	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && second == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && second == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders two hands by type, then card by card from the left.
func Compare(a, b string, jokers bool) int {
	if c := cmp.Compare(Type(a, jokers), Type(b, jokers)); c != 0 {
		return c
	}

	order := labels
	if jokers {
		order = jokerLabels
	}

	for i := range min(len(a), len(b)) {
		if c := cmp.Compare(strings.IndexByte(order, a[i]), strings.IndexByte(order, b[i])); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// Winnings ranks the hands from weakest (rank 1) and sums bid times rank.
func Winnings(hands []Hand, jokers bool) uint64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return Compare(a.Cards, b.Cards, jokers) })

	var total uint64
	for i, h := range sorted {
		total += h.Bid * uint64(i+1)
	}

	return total
}

// Solve totals the winnings without and with jokers.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return solver.Answer{}, err
	}

	return solver.Answer{Parts: []solver.Part{
		{Name: "total_winnings", Value: Winnings(hands, false)},
		{Name: "joker_winnings", Value: Winnings(hands, true)},
	}}, nil
}
