package solver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunner_Run(t *testing.T) {
	r := testRegistry(t)

	var jobs []Job
	for _, d := range r.All() {
		jobs = append(jobs, Job{Day: d, Input: "ignored"})
	}

	runner := &Runner{Parallelism: 2, Options: Options{Logger: zaptest.NewLogger(t)}}

	reports, err := runner.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, want := range []uint64{1, 5, 7} {
		assert.Equal(t, int(want), reports[i].Day.Number)

		v, ok := reports[i].Answer.Value("value")
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
}

func TestRunner_FailureStopsPending(t *testing.T) {
	boom := errors.New("boom")

	var calls atomic.Int32
	failing := Day{Number: 1, Name: "failing", Solve: func(string, Options) (Answer, error) {
		calls.Add(1)
		return Answer{}, boom
	}}
	counted := Day{Number: 2, Name: "counted", Solve: func(string, Options) (Answer, error) {
		calls.Add(1)
		return Answer{}, nil
	}}

	runner := &Runner{Parallelism: 1}

	_, err := runner.Run(context.Background(), []Job{{Day: failing}, {Day: counted}, {Day: counted}})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "day 1 (failing)")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{}

	_, err := runner.Run(ctx, []Job{{Day: Day{Number: 1, Name: "x", Solve: constant(1)}}})
	require.ErrorIs(t, err, context.Canceled)
}
