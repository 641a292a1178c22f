package almanac

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Example(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, exampleAlmanac)
	assert.Equal(t, []uint64{79, 14, 55, 13}, doc.Seeds)

	steps := doc.Graph.Steps()
	require.Len(t, steps, 7)
	assert.Equal(t, "seed-to-soil", steps[0].String())
	assert.Equal(t, "humidity-to-location", steps[6].String())

	set, err := doc.Graph.RuleSet("fertilizer", "water")
	require.NoError(t, err)
	assert.Equal(t, []Rule{
		{SourceStart: 0, DestinationStart: 42, Length: 7},
		{SourceStart: 7, DestinationStart: 57, Length: 4},
		{SourceStart: 11, DestinationStart: 0, Length: 42},
		{SourceStart: 53, DestinationStart: 49, Length: 8},
	}, set.Rules())
}

func TestParse_Tolerances(t *testing.T) {
	t.Parallel()

	input := "\r\n  seeds: 1 2  \r\n\r\na-to-b map:\r\n5 0 1\r\n\r\n\r\nb-to-c map:\r\n"
	doc := mustParse(t, input)

	assert.Equal(t, []uint64{1, 2}, doc.Seeds)
	assert.Len(t, doc.Graph.Steps(), 2)

	empty := mustParse(t, "")
	assert.Empty(t, empty.Seeds)
	assert.Empty(t, empty.Graph.Steps())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		line   int
		token  string
		target error
	}{
		{
			name:   "bad seed number",
			input:  "seeds: 79 1x4\n",
			line:   1,
			token:  "1x4",
			target: strconv.ErrSyntax,
		},
		{
			name:   "bad rule number",
			input:  "seeds: 1 2\n\na-to-b map:\n1 2 3\n4 -5 6\n",
			line:   5,
			token:  "-5",
			target: strconv.ErrSyntax,
		},
		{
			name:   "number out of range",
			input:  "a-to-b map:\n1 2 18446744073709551616\n",
			line:   2,
			token:  "18446744073709551616",
			target: strconv.ErrRange,
		},
		{
			name:   "short rule",
			input:  "a-to-b map:\n1 2\n",
			line:   2,
			token:  "1 2",
			target: ErrMalformedRule,
		},
		{
			name:   "rule outside map",
			input:  "seeds: 1 2\n\n1 2 3\n",
			line:   3,
			token:  "1 2 3",
			target: ErrRuleOutsideMap,
		},
		{
			name:   "bad header",
			input:  "seed-soil map:\n1 2 3\n",
			line:   1,
			token:  "seed-soil map:",
			target: ErrMalformedHeader,
		},
		{
			name:   "overlapping rules",
			input:  "\na-to-b map:\n10 0 5\n20 4 5\n",
			line:   2,
			token:  "a-to-b map:",
			target: ErrOverlappingRules,
		},
		{
			name:   "zero length rule",
			input:  "a-to-b map:\n10 0 0\n",
			line:   1,
			token:  "a-to-b map:",
			target: ErrEmptyRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %T: %v", err, err)
			assert.Equal(t, tt.line, syntaxErr.Line)
			assert.Equal(t, tt.token, syntaxErr.Token)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestParse_DuplicateBlock(t *testing.T) {
	t.Parallel()

	_, err := Parse("a-to-b map:\n1 2 3\n\na-to-b map:\n4 5 6\n")
	assert.True(t, errors.Is(err, ErrDuplicateRuleSet))
}

func TestParse_SeedSet(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "seeds: 1 2 3\n")
	_, err := doc.SeedSet()
	assert.True(t, errors.Is(err, ErrOddSeedCount))
}
