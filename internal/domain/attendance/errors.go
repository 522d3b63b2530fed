package attendance

import "errors"

// Attendance domain errors
var (
	ErrNoSnapshot    = errors.New("attendance snapshot not yet available")
	ErrRefreshFailed = errors.New("attendance backend fetch failed")
)
