package attendance

import (
	"context"
)

// Service exposes the derived attendance views. All derivations are pure
// transformations over the latest applied snapshot; the only asynchronous
// boundary is Refresh, which talks to the attendance backend.
type Service interface {
	// Directory returns the one-record-per-employee reduction with status
	// labels and live elapsed durations, filtered by the request value.
	Directory(ctx context.Context, filter DirectoryFilter) (DirectoryResponse, error)

	// Records returns the raw ungrouped snapshot.
	Records(ctx context.Context) (ListRecordsResponse, error)

	// Today returns the subset of records dated today.
	Today(ctx context.Context) (ListRecordsResponse, error)

	// Refresh fetches a new snapshot from the backend and applies it if it is
	// not stale. A failed fetch leaves the last-good snapshot in place.
	Refresh(ctx context.Context, req RefreshRequest) error
}
