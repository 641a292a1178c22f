// Package scratchcards scores lottery cards and counts the copies they win.
package scratchcards

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

var ErrMalformedCard = errors.New("malformed card")

// Card is one scratchcard.
type Card struct {
	Number  uint64
	Winning []uint64
	Have    []uint64
}

// ParseCard parses "Card 1: 41 48 83 | 83 86 6".
func ParseCard(line string) (Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q: missing ':'", ErrMalformedCard, line)
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("%w: %q: bad header", ErrMalformedCard, line)
	}

	number, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %w", ErrMalformedCard, line, err)
	}

	winning, have, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %d: missing '|'", ErrMalformedCard, number)
	}

	card := Card{Number: number}

	if card.Winning, err = common.ParseUints(winning); err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %w", ErrMalformedCard, number, err)
	}

	if card.Have, err = common.ParseUints(have); err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %w", ErrMalformedCard, number, err)
	}

	return card, nil
}

// Matches counts the numbers held that are also winning numbers.
func (c Card) Matches() int {
	n := 0
	for _, v := range c.Have {
		if slices.Contains(c.Winning, v) {
			n++
		}
	}

	return n
}

// Score is 1 for the first match, doubled for each further match.
func (c Card) Score() uint64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

// TotalCards counts the cards held once every win has been copied forward.
// A card with m matches wins one copy of each of the next m cards; wins past
// the end of the table are lost.
func TotalCards(cards []Card) uint64 {
	copies := make([]uint64, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	return common.Sum(copies)
}

// Solve adds up the scores and the total number of cards.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	var cards []Card

	for _, line := range common.Lines(input) {
		c, err := ParseCard(line)
		if err != nil {
			return solver.Answer{}, err
		}

		cards = append(cards, c)
	}

	var scores uint64
	for _, c := range cards {
		scores += c.Score()
	}

	return solver.Answer{Parts: []solver.Part{
		{Name: "scores", Value: scores},
		{Name: "total_cards", Value: TotalCards(cards)},
	}}, nil
}
