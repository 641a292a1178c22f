package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, g *Graph) []string {
	t.Helper()

	diags := Validate(g)

	var out []string
	for _, d := range diags.All() {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Example(t *testing.T) {
	t.Parallel()

	diags := Validate(mustParse(t, exampleAlmanac).Graph)
	assert.Zero(t, diags.Len(), "unexpected diagnostics: %v", diags.All())
}

func TestValidate_Findings(t *testing.T) {
	t.Parallel()

	t.Run("branching", func(t *testing.T) {
		g := mustGraph(t, mustRuleSet(t, "a", "b"), mustRuleSet(t, "a", "c"))
		assert.Equal(t, []string{"branching_category"}, codes(t, g))
	})

	t.Run("cycle", func(t *testing.T) {
		g := mustGraph(t, chain(t, "a", "b", "c", "a")...)

		diags := Validate(g)
		require.True(t, diags.HasErrors())
		assert.Equal(t, "graph_cycle", diags.Errors[0].Code)
	})

	t.Run("destination overlap", func(t *testing.T) {
		g := mustGraph(t, mustRuleSet(t, "a", "b",
			Rule{SourceStart: 0, DestinationStart: 100, Length: 10},
			Rule{SourceStart: 50, DestinationStart: 105, Length: 10},
		))

		diags := Validate(g)
		require.Len(t, diags.Infos, 1)
		assert.Equal(t, "destination_overlap", diags.Infos[0].Code)
		assert.Equal(t, "a-to-b", diags.Infos[0].Subject)
	})

	t.Run("disconnected", func(t *testing.T) {
		sets := append(chain(t, "a", "b"), chain(t, "c", "d")...)
		assert.Equal(t, []string{"disconnected_graph"}, codes(t, mustGraph(t, sets...)))
	})
}
