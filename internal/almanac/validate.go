package almanac

import (
	"errors"
	"fmt"

	"advent-solver/internal/diagnostic"
)

// Validate runs static checks over a graph. Path resolution only needs a
// chain of categories; anything else is reported here.
func Validate(g *Graph) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, c := range g.categories {
		if n := len(g.out[c]); n > 1 {
			diags.AddWarning("branching_category",
				fmt.Sprintf("%d outgoing rule sets; paths may be ambiguous", n), string(c))
		}

		if n := len(g.in[c]); n > 1 {
			diags.AddWarning("branching_category",
				fmt.Sprintf("%d incoming rule sets; paths may be ambiguous", n), string(c))
		}
	}

	if _, err := g.Categories(); errors.Is(err, ErrCycle) {
		diags.AddError("graph_cycle", "categories form a cycle", "")
	}

	for _, step := range g.order {
		if g.sets[step].HasDestinationOverlap() {
			diags.AddInfo("destination_overlap",
				"rules share destination values; reverse mapping keeps the first rule", step.String())
		}
	}

	if n := g.components(); n > 1 {
		diags.AddWarning("disconnected_graph",
			fmt.Sprintf("categories form %d unconnected groups", n), "")
	}

	return diags
}

// components counts weakly connected groups of categories.
func (g *Graph) components() int {
	seen := make(map[Category]bool, len(g.categories))
	count := 0

	for _, start := range g.categories {
		if seen[start] {
			continue
		}

		count++
		seen[start] = true
		stack := []Category{start}

		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, adjacent := range [][]Category{g.out[c], g.in[c]} {
				for _, next := range adjacent {
					if !seen[next] {
						seen[next] = true
						stack = append(stack, next)
					}
				}
			}
		}
	}

	return count
}
