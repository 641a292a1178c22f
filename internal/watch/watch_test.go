package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func start(t *testing.T, w *Watcher, onChange func(context.Context, string)) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx, onChange) }()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)
}

func TestWatcher_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "day_5.txt")
	require.NoError(t, os.WriteFile(input, []byte("seeds: 1 2\n"), 0o644))

	w, err := New([]string{input}, WithDebounce(50*time.Millisecond), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	changed := make(chan string, 4)
	start(t, w, func(_ context.Context, path string) { changed <- path })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(input, []byte("seeds: 3 4\n"), 0o644))

	select {
	case path := <-changed:
		assert.Equal(t, input, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	w, err := New([]string{input}, WithDebounce(200*time.Millisecond))
	require.NoError(t, err)

	var calls atomic.Int32
	start(t, w, func(context.Context, string) { calls.Add(1) })

	for i := range 3 {
		require.NoError(t, os.WriteFile(input, []byte{byte('a' + i)}, 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "gone", "input.txt")})
	require.NoError(t, err)

	err = w.Run(context.Background(), func(context.Context, string) {})
	require.Error(t, err)
}
