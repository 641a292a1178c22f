// Package wasteland follows left/right instructions through a node network.
package wasteland

import (
	"errors"
	"fmt"
	"strings"

	"advent-solver/internal/common"
	"advent-solver/internal/solver"
)

//go:generate go tool stringer -type=Turn

// Turn picks one of the two exits of a node.
type Turn int

const (
	Left Turn = iota
	Right
)

const (
	Start  = "AAA"
	Finish = "ZZZ"
)

var (
	ErrMalformedNetwork = errors.New("malformed network")
	ErrUnknownNode      = errors.New("unknown node")
	ErrUnreachable      = errors.New("target never reached")
	ErrNoGhosts         = errors.New("no node ends with 'A'")
)

// Network is the instruction list and the node table.
type Network struct {
	turns []Turn
	nodes map[string][2]string
	order []string
}

// Parse reads the instruction line followed by "AAA = (BBB, CCC)" lines.
func Parse(input string) (*Network, error) {
	lines := common.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedNetwork)
	}

	n := &Network{nodes: make(map[string][2]string)}

	for _, c := range lines[0] {
		switch c {
		case 'L':
			n.turns = append(n.turns, Left)
		case 'R':
			n.turns = append(n.turns, Right)
		default:
			return nil, fmt.Errorf("%w: bad instruction %q", ErrMalformedNetwork, c)
		}
	}

	for _, line := range lines[1:] {
		name, exits, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNetwork, line)
		}

		exits = strings.TrimSpace(exits)
		exits = strings.TrimSuffix(strings.TrimPrefix(exits, "("), ")")

		left, right, ok := strings.Cut(exits, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNetwork, line)
		}

		name = strings.TrimSpace(name)
		if _, dup := n.nodes[name]; dup {
			return nil, fmt.Errorf("%w: node %s defined twice", ErrMalformedNetwork, name)
		}

		n.nodes[name] = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
		n.order = append(n.order, name)
	}

	return n, nil
}

// Has reports whether the network defines node.
func (n *Network) Has(node string) bool {
	_, ok := n.nodes[node]
	return ok
}

// Steps counts the moves from start until done holds. Once every pair of
// node and instruction position has been visited the walk is looping and
// ErrUnreachable is returned.
func (n *Network) Steps(start string, done func(string) bool) (uint64, error) {
	if len(n.turns) == 0 {
		return 0, fmt.Errorf("%w: no instructions", ErrMalformedNetwork)
	}

	limit := uint64(len(n.turns)) * uint64(len(n.nodes))
	current := start

	for steps := uint64(0); ; steps++ {
		if done(current) {
			return steps, nil
		}

		if steps > limit {
			return 0, fmt.Errorf("%w: from %s", ErrUnreachable, start)
		}

		exits, ok := n.nodes[current]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownNode, current)
		}

		current = exits[n.turns[steps%uint64(len(n.turns))]]
	}
}

// GhostSteps walks every node ending in 'A' at once and returns the number of
// steps until all of them stand on nodes ending in 'Z'. Each ghost's first
// arrival time is combined with LCM, which holds for inputs whose cycles
// return to the end node at a fixed period.
func (n *Network) GhostSteps() (uint64, error) {
	var counts []uint64

	for _, node := range n.order {
		if !strings.HasSuffix(node, "A") {
			continue
		}

		steps, err := n.Steps(node, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}

		counts = append(counts, steps)
	}

	if len(counts) == 0 {
		return 0, ErrNoGhosts
	}

	return common.LCM(counts...), nil
}

// Solve walks from AAA to ZZZ and runs the ghost walk. The first part is
// left out, with a note, when the network has no AAA node.
func Solve(input string, _ solver.Options) (solver.Answer, error) {
	n, err := Parse(input)
	if err != nil {
		return solver.Answer{}, err
	}

	var answer solver.Answer

	if n.Has(Start) {
		steps, err := n.Steps(Start, func(s string) bool { return s == Finish })
		if err != nil {
			return solver.Answer{}, err
		}

		answer.Parts = append(answer.Parts, solver.Part{Name: "basic_steps", Value: steps})
	} else {
		answer.Diagnostics.AddInfo("missing_start", "network has no "+Start+" node", "basic_steps")
	}

	ghosts, err := n.GhostSteps()
	if err != nil {
		return solver.Answer{}, err
	}

	answer.Parts = append(answer.Parts, solver.Part{Name: "complex_steps", Value: ghosts})

	return answer, nil
}
