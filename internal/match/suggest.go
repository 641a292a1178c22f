package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum Similarity for a name to be suggested.
const DefaultThreshold = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit known names that look like name, most similar
// first. Names below threshold are left out. Ties keep the order of known.
func Suggest(name string, known []string, limit int, threshold float64) []string {
	if limit <= 0 {
		return nil
	}

	var candidates []scored

	for _, k := range known {
		if score := Similarity(name, k); score >= threshold {
			candidates = append(candidates, scored{name: k, score: score})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.name)
	}

	return out
}
