// Package snapshot holds the last-good attendance snapshot. Every derivation
// reads a consistent snapshot and produces fresh output; nothing is patched
// in place.
package snapshot

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/campushq/attendance-insights/internal/domain/attendance"
	"github.com/campushq/attendance-insights/internal/upstream"
)

// ErrStale is returned by Apply when a snapshot from an older fetch arrives
// after a newer one has already been applied.
var ErrStale = errors.New("snapshot superseded by a newer fetch")

// Snapshot is one fetched record set plus the backend stats document.
type Snapshot struct {
	Seq       uint64
	FetchID   string
	FetchedAt time.Time
	Records   []attendance.Record
	Stats     upstream.Stats
}

// Store keeps the most recent applied snapshot. Fetches are issued with
// Begin and applied with Apply; a slow fetch that resolves after a newer one
// is rejected, so the rendered state always reflects the last-issued fetch
// regardless of resolution order.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
	applied bool

	seq atomic.Uint64
}

func NewStore() *Store {
	return &Store{}
}

// Begin reserves the sequence number for a new fetch cycle.
func (s *Store) Begin() uint64 {
	return s.seq.Add(1)
}

// Apply installs snap as the current snapshot unless a snapshot with a newer
// sequence number is already in place.
func (s *Store) Apply(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applied && snap.Seq <= s.current.Seq {
		return ErrStale
	}

	s.current = snap
	s.applied = true
	return nil
}

// Current returns the latest applied snapshot. The second return is false
// until the first successful fetch; callers keep serving the last-good
// snapshot across failed refreshes because failures never reach Apply.
func (s *Store) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.applied
}
