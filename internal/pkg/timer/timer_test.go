package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateOf(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	assert.Equal(t, Idle, StateOf(nil, nil))
	assert.Equal(t, Running, StateOf(&in, nil))
	assert.Equal(t, Stopped, StateOf(&in, &out))
}

func TestElapsed(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 30*time.Minute)

	assert.Equal(t, time.Duration(0), Elapsed(nil, nil, in))

	// Running: measured against now, so it never decreases.
	now1 := in.Add(90 * time.Minute)
	now2 := now1.Add(time.Minute)
	e1 := Elapsed(&in, nil, now1)
	e2 := Elapsed(&in, nil, now2)
	assert.Equal(t, 90*time.Minute, e1)
	assert.GreaterOrEqual(t, e2, e1)

	// Stopped: frozen at checkout, now is ignored.
	assert.Equal(t, 8*time.Hour+30*time.Minute, Elapsed(&in, &out, out.Add(5*time.Hour)))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0h 0m"},
		{90 * time.Minute, "1h 30m"},
		{59*time.Minute + 59*time.Second, "0h 59m"},
		{9*time.Hour + 5*time.Minute, "9h 5m"},
		{-time.Minute, "0h 0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.d), "duration %v", tt.d)
	}
}

func TestTracker_TickAndCancel(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(10 * time.Millisecond)
	defer tracker.Stop()

	ticks := make(chan time.Duration, 16)
	handle := tracker.Track("E001", time.Now().Add(-time.Hour), func(elapsed time.Duration) {
		select {
		case ticks <- elapsed:
		default:
		}
	})

	// First tick fires immediately.
	select {
	case elapsed := <-ticks:
		assert.GreaterOrEqual(t, elapsed, time.Hour)
	case <-time.After(time.Second):
		t.Fatal("no immediate tick")
	}

	// Periodic ticks follow.
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("no periodic tick")
	}

	assert.True(t, tracker.Tracked("E001"))
	assert.Equal(t, 1, tracker.Active())

	handle.Cancel()
	handle.Cancel() // safe to repeat

	assert.False(t, tracker.Tracked("E001"))
	assert.Equal(t, 0, tracker.Active())
}

func TestTracker_RetrackReplacesPreviousTicker(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(10 * time.Millisecond)
	defer tracker.Stop()

	var first, second atomic.Int64
	tracker.Track("E001", time.Now(), func(time.Duration) { first.Add(1) })
	tracker.Track("E001", time.Now(), func(time.Duration) { second.Add(1) })

	require.Equal(t, 1, tracker.Active())

	// Let the replacement tick a few times, then confirm the first ticker
	// stopped advancing.
	time.Sleep(50 * time.Millisecond)
	stopped := first.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, stopped, first.Load())
	assert.Greater(t, second.Load(), int64(1))
}

func TestTracker_StopCancelsEverything(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(10 * time.Millisecond)
	for _, id := range []string{"E001", "E002", "E003"} {
		tracker.Track(id, time.Now(), func(time.Duration) {})
	}
	require.Equal(t, 3, tracker.Active())

	tracker.Stop()

	assert.Equal(t, 0, tracker.Active())
}

func TestTracker_CancelByEmployeeID(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(10 * time.Millisecond)
	defer tracker.Stop()

	tracker.Track("E001", time.Now(), func(time.Duration) {})
	tracker.Cancel("E001")
	tracker.Cancel("E001") // no-op on missing entry

	assert.False(t, tracker.Tracked("E001"))
}
