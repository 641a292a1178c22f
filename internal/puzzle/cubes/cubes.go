// Package cubes checks games of cubes drawn from a bag.
package cubes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

var (
	ErrMalformedGame = errors.New("malformed game")
	ErrUnknownColor  = errors.New("unknown color")
)

// Bag is the limit the first part checks games against.
var Bag = Drawing{Red: 12, Green: 13, Blue: 14}

// Drawing counts the cubes of each color shown at once.
type Drawing struct {
	Red, Green, Blue uint64
}

// Fits reports whether d could be drawn from a bag holding limit.
func (d Drawing) Fits(limit Drawing) bool {
	return d.Red <= limit.Red && d.Green <= limit.Green && d.Blue <= limit.Blue
}

// Power multiplies the three counts.
func (d Drawing) Power() uint64 {
	return d.Red * d.Green * d.Blue
}

// Game is one line of the record.
type Game struct {
	ID       uint64
	Drawings []Drawing
}

// Possible reports whether every drawing fits limit.
func (g Game) Possible(limit Drawing) bool {
	for _, d := range g.Drawings {
		if !d.Fits(limit) {
			return false
		}
	}

	return true
}

// Minimum returns the smallest bag that makes the game possible. Colors never
// drawn stay at zero.
func (g Game) Minimum() Drawing {
	var m Drawing
	for _, d := range g.Drawings {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}

	return m
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: %q: missing ':'", ErrMalformedGame, line)
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Game" {
		return Game{}, fmt.Errorf("%w: %q: bad header", ErrMalformedGame, line)
	}

	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("%w: %q: %w", ErrMalformedGame, line, err)
	}

	game := Game{ID: id}

	for _, part := range strings.Split(body, ";") {
		d, err := parseDrawing(part)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}

		game.Drawings = append(game.Drawings, d)
	}

	return game, nil
}

func parseDrawing(s string) (Drawing, error) {
	var d Drawing

	for _, item := range strings.Split(s, ",") {
		fields := strings.Fields(item)
		if len(fields) != 2 {
			return Drawing{}, fmt.Errorf("%w: bad cube count %q", ErrMalformedGame, strings.TrimSpace(item))
		}

		n, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return Drawing{}, fmt.Errorf("%w: %w", ErrMalformedGame, err)
		}

		switch fields[1] {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Drawing{}, fmt.Errorf("%w: %q", ErrUnknownColor, fields[1])
		}
	}

	return d, nil
}

// Solve sums the ids of games possible with Bag and the powers of the
// minimum bags.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	var ids, powers uint64

	for _, line := range common.Lines(input) {
		game, err := ParseGame(line)
		if err != nil {
			return solver.Answer{}, err
		}

		if game.Possible(Bag) {
			ids += game.ID
		}

		powers += game.Minimum().Power()
	}

	return solver.Answer{Parts: []solver.Part{
		{Name: "playable_games_sum", Value: ids},
		{Name: "lowest_drawing_powers_sum", Value: powers},
	}}, nil
}
