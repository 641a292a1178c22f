package almanac

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_MapPoints(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, exampleAlmanac)
	m := NewMapper(doc.Graph)

	locations, err := m.MapPoints("seed", "location", doc.Seeds)
	require.NoError(t, err)
	assert.Equal(t, []uint64{82, 43, 86, 35}, locations)
	assert.Equal(t, []uint64{79, 14, 55, 13}, doc.Seeds, "input must not be modified")

	seeds, err := m.MapPoints("location", "seed", locations)
	require.NoError(t, err)
	assert.Equal(t, doc.Seeds, seeds)

	soils, err := m.MapPoints("seed", "soil", doc.Seeds)
	require.NoError(t, err)
	assert.Equal(t, []uint64{81, 14, 57, 13}, soils)
}

func TestMapper_MapRanges_Example(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, exampleAlmanac)
	seeds, err := doc.SeedSet()
	require.NoError(t, err)

	m := NewMapper(doc.Graph)

	locations, err := m.MapRanges("seed", "location", seeds.Ranges())
	require.NoError(t, err)
	assert.Equal(t, seeds.Total(), totalLength(locations))

	lowest, ok := MinStart(locations)
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)

	back, err := m.MapRanges("location", "seed", locations)
	require.NoError(t, err)
	assert.Equal(t, seeds.Total(), totalLength(back))

	for _, r := range back {
		for p := r.Start; p < r.End(); p++ {
			assert.True(t, seeds.Contains(p), "seed %d from reverse mapping", p)
		}
	}
}

func TestMapper_MapRanges_AgreesWithPoints(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, exampleAlmanac)
	m := NewMapper(doc.Graph)

	in := []Range{{Start: 0, Length: 110}}
	out, err := m.MapRanges("seed", "location", in)
	require.NoError(t, err)

	points := make([]uint64, 110)
	for i := range points {
		points[i] = uint64(i)
	}

	mapped, err := m.MapPoints("seed", "location", points)
	require.NoError(t, err)

	var flattened []uint64
	for _, r := range out {
		for k := range r.Length {
			flattened = append(flattened, r.Start+k)
		}
	}

	assert.ElementsMatch(t, mapped, flattened)
}

func TestMapper_EmptyAndSelf(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, exampleAlmanac)
	m := NewMapper(doc.Graph)

	out, err := m.MapRanges("seed", "location", []Range{{Start: 79}})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = m.MapRanges("soil", "soil", []Range{{Start: 3, Length: 2}, {Start: 9}})
	require.NoError(t, err)
	assert.Equal(t, []Range{{Start: 3, Length: 2}}, out)

	_, ok := MinStart(nil)
	assert.False(t, ok)

	_, ok = MinStart([]Range{{Start: 0}})
	assert.False(t, ok)
}

func TestMapper_NoPath(t *testing.T) {
	t.Parallel()

	m := NewMapper(mustParse(t, exampleAlmanac).Graph)

	_, err := m.MapRanges("seed", "moon", []Range{{Start: 1, Length: 1}})
	assert.True(t, errors.Is(err, ErrNoPath))

	_, err = m.MapPoints("moon", "seed", []uint64{1})
	assert.True(t, errors.Is(err, ErrNoPath))
}

func TestMapper_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, exampleAlmanac)
	m := NewMapper(doc.Graph)

	var wg sync.WaitGroup
	results := make([]uint64, 8)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			out, err := m.MapRanges("seed", "location", []Range{{79, 14}, {55, 13}})
			if err != nil {
				return
			}

			results[i], _ = MinStart(out)
		}()
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, uint64(46), got)
	}
}
