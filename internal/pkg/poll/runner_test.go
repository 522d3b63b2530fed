package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunsImmediatelyThenOnInterval(t *testing.T) {
	t.Parallel()

	runner := NewRunner()
	defer runner.Stop()

	var runs atomic.Int64
	first := make(chan struct{})
	task := runner.Schedule("count", 10*time.Millisecond, func(ctx context.Context) error {
		if runs.Add(1) == 1 {
			close(first)
		}
		return nil
	})
	defer task.Cancel()

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("task did not run immediately")
	}

	require.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestRunner_CancelStopsTask(t *testing.T) {
	t.Parallel()

	runner := NewRunner()
	defer runner.Stop()

	var runs atomic.Int64
	task := runner.Schedule("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	task.Cancel()
	task.Cancel() // safe to repeat

	assert.Equal(t, 0, runner.Active())

	stopped := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestRunner_StopCancelsAllTasks(t *testing.T) {
	t.Parallel()

	runner := NewRunner()

	for i := 0; i < 3; i++ {
		runner.Schedule("task", 10*time.Millisecond, func(ctx context.Context) error {
			return nil
		})
	}

	runner.Stop()
	assert.Equal(t, 0, runner.Active())
}

func TestRunner_TaskErrorDoesNotStopSchedule(t *testing.T) {
	t.Parallel()

	runner := NewRunner()
	defer runner.Stop()

	var runs atomic.Int64
	task := runner.Schedule("failing", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("backend down")
	})
	defer task.Cancel()

	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}
