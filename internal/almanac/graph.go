package almanac

import (
	"fmt"
	"slices"
)

// Step is one category pair along a plan. It always names the stored rule set
// as source and destination, whichever way the plan traverses it.
type Step struct {
	Source      Category
	Destination Category
}

func (s Step) String() string {
	return string(s.Source) + "-to-" + string(s.Destination)
}

// Plan is a resolved path between two categories. Steps are listed in the
// order they must be applied.
type Plan struct {
	Steps    []Step
	Reversed bool
}

// Direction returns Reverse for reversed plans and Forward otherwise.
func (p Plan) Direction() Direction {
	if p.Reversed {
		return Reverse
	}

	return Forward
}

// Graph is the collection of rule sets of one almanac. It is read-only after
// NewGraph returns.
type Graph struct {
	sets  map[Step]*RuleSet
	order []Step

	categories []Category
	out        map[Category][]Category
	in         map[Category][]Category
}

// NewGraph builds the adjacency of the given rule sets. Each category pair
// may appear only once.
func NewGraph(sets ...*RuleSet) (*Graph, error) {
	g := &Graph{
		sets: make(map[Step]*RuleSet, len(sets)),
		out:  make(map[Category][]Category),
		in:   make(map[Category][]Category),
	}

	seen := make(map[Category]bool)
	addCategory := func(c Category) {
		if !seen[c] {
			seen[c] = true
			g.categories = append(g.categories, c)
		}
	}

	for _, set := range sets {
		step := set.Step()
		if _, exists := g.sets[step]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRuleSet, step)
		}

		g.sets[step] = set
		g.order = append(g.order, step)
		g.out[step.Source] = append(g.out[step.Source], step.Destination)
		g.in[step.Destination] = append(g.in[step.Destination], step.Source)

		addCategory(step.Source)
		addCategory(step.Destination)
	}

	return g, nil
}

// Steps returns the stored category pairs in insertion order.
func (g *Graph) Steps() []Step {
	return slices.Clone(g.order)
}

// HasCategory reports whether any rule set names c.
func (g *Graph) HasCategory(c Category) bool {
	return slices.Contains(g.categories, c)
}

// CategoryNames returns every category in first-seen order.
func (g *Graph) CategoryNames() []Category {
	return slices.Clone(g.categories)
}

// RuleSet returns the rule set stored for a category pair.
func (g *Graph) RuleSet(source, destination Category) (*RuleSet, error) {
	set, ok := g.sets[Step{Source: source, Destination: destination}]
	if !ok {
		return nil, &RuleSetNotFoundError{Source: source, Destination: destination}
	}

	return set, nil
}

// Resolve finds the steps connecting from to to. Outgoing edges are tried
// first; if to is not reachable that way, incoming edges are followed and the
// plan is marked Reversed. Resolving a category to itself yields an empty plan.
func (g *Graph) Resolve(from, to Category) (Plan, error) {
	if from == to {
		return Plan{}, nil
	}

	if steps, ok := g.walk(from, to, Forward); ok {
		return Plan{Steps: steps}, nil
	}

	if steps, ok := g.walk(from, to, Reverse); ok {
		return Plan{Steps: steps, Reversed: true}, nil
	}

	return Plan{}, &NoPathError{From: from, To: to}
}

// walk runs a breadth-first search from one category to another along
// outgoing (Forward) or incoming (Reverse) edges.
func (g *Graph) walk(from, to Category, dir Direction) ([]Step, bool) {
	adjacent := g.out
	if dir == Reverse {
		adjacent = g.in
	}

	prev := map[Category]Category{from: from}
	queue := []Category{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adjacent[current] {
			if _, visited := prev[next]; visited {
				continue
			}

			prev[next] = current
			if next == to {
				return trace(prev, from, to, dir), true
			}

			queue = append(queue, next)
		}
	}

	return nil, false
}

// trace rebuilds the steps from the predecessor map of walk.
func trace(prev map[Category]Category, from, to Category, dir Direction) []Step {
	var steps []Step

	for current := to; current != from; current = prev[current] {
		before := prev[current]
		if dir == Forward {
			steps = append(steps, Step{Source: before, Destination: current})
		} else {
			steps = append(steps, Step{Source: current, Destination: before})
		}
	}

	slices.Reverse(steps)

	return steps
}

// Categories returns the categories in chain order. Ties between categories
// that are ready at the same time keep first-seen order.
func (g *Graph) Categories() ([]Category, error) {
	return chainOrder(g.categories, g.in)
}
