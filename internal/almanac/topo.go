package almanac

import "slices"

// chainOrder lists categories so that every category comes after all the
// categories mapping into it. Among categories that become ready together,
// the one listed first in categories wins. A cycle yields ErrCycle.
func chainOrder(categories []Category, incoming map[Category][]Category) ([]Category, error) {
	rank := make(map[Category]int, len(categories))
	for i, c := range categories {
		rank[c] = i
	}

	pending := make(map[Category]int, len(categories))
	next := make(map[Category][]Category, len(categories))

	for _, c := range categories {
		for _, src := range incoming[c] {
			pending[c]++
			next[src] = append(next[src], c)
		}
	}

	var ready []Category

	for _, c := range categories {
		if pending[c] == 0 {
			ready = append(ready, c)
		}
	}

	order := make([]Category, 0, len(categories))

	for len(ready) > 0 {
		c := ready[0]
		ready = ready[1:]
		order = append(order, c)

		for _, dst := range next[c] {
			pending[dst]--
			if pending[dst] > 0 {
				continue
			}

			at, _ := slices.BinarySearchFunc(ready, dst, func(a, b Category) int {
				return rank[a] - rank[b]
			})
			ready = slices.Insert(ready, at, dst)
		}
	}

	if len(order) != len(categories) {
		return nil, ErrCycle
	}

	return order, nil
}
