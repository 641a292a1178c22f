package inputcache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeFetcher struct {
	bodies map[int]string
	calls  int
	err    error
}

func (f *fakeFetcher) Fetch(_ context.Context, day int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}

	return f.bodies[day], nil
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	fetcher := &fakeFetcher{bodies: map[int]string{6: "Time: 7\nDistance: 9\n"}}
	l := &Loader{Store: s, Fetcher: fetcher, Logger: zaptest.NewLogger(t)}

	ctx := context.Background()

	for range 2 {
		body, err := l.Load(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, "Time: 7\nDistance: 9\n", body)
	}

	assert.Equal(t, 1, fetcher.calls)

	_, err = l.Refresh(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = (&Loader{Store: s}).Load(ctx, 3)
	require.ErrorIs(t, err, ErrNotCached)

	boom := errors.New("offline")
	_, err = (&Loader{Store: s, Fetcher: &fakeFetcher{err: boom}}).Load(ctx, 3)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to fetch day 3")

	_, ok, err := s.Get(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}
