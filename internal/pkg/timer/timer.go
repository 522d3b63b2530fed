// Package timer computes and ticks live elapsed durations for employees who
// are clocked in but not yet clocked out.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// State is the lifecycle of a duration display for one record.
type State int

const (
	// Idle: no check-in yet, nothing to display.
	Idle State = iota
	// Running: checked in, not checked out; elapsed tracks wall-clock time.
	Running
	// Stopped: checked out; elapsed is frozen at checkout minus check-in.
	Stopped
)

// StateOf derives the display state from the record's timestamps.
func StateOf(checkIn, checkOut *time.Time) State {
	switch {
	case checkIn == nil:
		return Idle
	case checkOut == nil:
		return Running
	default:
		return Stopped
	}
}

// Elapsed computes the duration to display at the given wall-clock time.
// Running durations are measured against now; stopped durations ignore it.
func Elapsed(checkIn, checkOut *time.Time, now time.Time) time.Duration {
	switch StateOf(checkIn, checkOut) {
	case Idle:
		return 0
	case Running:
		return now.Sub(*checkIn)
	default:
		return checkOut.Sub(*checkIn)
	}
}

// Format renders a duration as "1h 30m", flooring hours and remainder
// minutes. Seconds are never shown; this feeds a dashboard, not a stopwatch.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Handle cancels one tracked employee's ticker. Safe to call more than once.
type Handle struct {
	once sync.Once
	stop func()
}

func (h *Handle) Cancel() {
	h.once.Do(h.stop)
}

type trackerEntry struct {
	stopCh   chan struct{}
	stopOnce sync.Once
}

func (e *trackerEntry) stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
}

// Tracker ticks elapsed durations for running records. Each tracked employee
// gets one ticker; re-tracking an employee replaces the previous ticker, and
// cancelling removes it. Every handle started for a visible row must be
// cancelled when the row stops or leaves the view; leaked tickers are a
// defect, not a recoverable condition.
type Tracker struct {
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*trackerEntry
	wg      sync.WaitGroup
}

func NewTracker(interval time.Duration) *Tracker {
	return &Tracker{
		interval: interval,
		now:      time.Now,
		entries:  make(map[string]*trackerEntry),
	}
}

// Track starts ticking for one running employee. tick fires once immediately
// and then on every interval with the current elapsed duration, until the
// returned handle is cancelled.
func (t *Tracker) Track(employeeID string, checkIn time.Time, tick func(elapsed time.Duration)) *Handle {
	t.mu.Lock()

	if prev, ok := t.entries[employeeID]; ok {
		prev.stop()
		delete(t.entries, employeeID)
	}

	entry := &trackerEntry{stopCh: make(chan struct{})}
	t.entries[employeeID] = entry
	t.mu.Unlock()

	handle := &Handle{stop: func() {
		t.mu.Lock()
		if cur, ok := t.entries[employeeID]; ok && cur == entry {
			delete(t.entries, employeeID)
		}
		t.mu.Unlock()
		entry.stop()
	}}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		tick(t.now().Sub(checkIn))

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-entry.stopCh:
				return
			case <-ticker.C:
				tick(t.now().Sub(checkIn))
			}
		}
	}()

	return handle
}

// Tracked reports whether an employee currently has a live ticker.
func (t *Tracker) Tracked(employeeID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[employeeID]
	return ok
}

// Cancel stops the ticker for one employee, if any.
func (t *Tracker) Cancel(employeeID string) {
	t.mu.Lock()
	entry, ok := t.entries[employeeID]
	if ok {
		delete(t.entries, employeeID)
	}
	t.mu.Unlock()
	if ok {
		entry.stop()
	}
}

// Active returns the number of live tickers.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Stop cancels every ticker and waits for their goroutines to exit.
func (t *Tracker) Stop() {
	t.mu.Lock()
	entries := make([]*trackerEntry, 0, len(t.entries))
	for _, entry := range t.entries {
		entries = append(entries, entry)
	}
	t.entries = make(map[string]*trackerEntry)
	t.mu.Unlock()

	for _, entry := range entries {
		entry.stop()
	}
	t.wg.Wait()
}
