// Package puzzle registers every solved day with a solver registry.
package puzzle

import (
	"advent-solver/internal/puzzle/camelcards"
	"advent-solver/internal/puzzle/cubes"
	"advent-solver/internal/puzzle/gears"
	"advent-solver/internal/puzzle/races"
	"advent-solver/internal/puzzle/scratchcards"
	"advent-solver/internal/puzzle/seeds"
	"advent-solver/internal/puzzle/trebuchet"
	"advent-solver/internal/puzzle/wasteland"
	"advent-solver/internal/solver"
)

var days = []solver.Day{
	{Number: 1, Name: "trebuchet", Title: "Trebuchet?!", Solve: trebuchet.Solve},
	{Number: 2, Name: "cubes", Title: "Cube Conundrum", Solve: cubes.Solve},
	{Number: 3, Name: "gears", Title: "Gear Ratios", Solve: gears.Solve},
	{Number: 4, Name: "scratchcards", Title: "Scratchcards", Solve: scratchcards.Solve},
	{Number: 5, Name: "seeds", Title: "If You Give A Seed A Fertilizer", Solve: seeds.Solve},
	{Number: 6, Name: "races", Title: "Wait For It", Solve: races.Solve},
	{Number: 7, Name: "camelcards", Title: "Camel Cards", Solve: camelcards.Solve},
	{Number: 8, Name: "wasteland", Title: "Haunted Wasteland", Solve: wasteland.Solve},
}

// Register adds every day to r.
func Register(r *solver.Registry) error {
	for _, d := range days {
		if err := r.Add(d); err != nil {
			return err
		}
	}

	return nil
}

// Registry returns a registry holding every day.
func Registry() *solver.Registry {
	r := solver.NewRegistry()
	if err := Register(r); err != nil {
		panic(err)
	}

	return r
}
