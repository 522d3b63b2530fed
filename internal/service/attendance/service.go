package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/campushq/attendance-insights/internal/config"
	"github.com/campushq/attendance-insights/internal/domain/attendance"
	"github.com/campushq/attendance-insights/internal/pkg/snapshot"
	"github.com/campushq/attendance-insights/internal/pkg/sse"
	"github.com/campushq/attendance-insights/internal/pkg/timer"
	"github.com/campushq/attendance-insights/internal/upstream"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Backend is the slice of the upstream client this service needs.
type Backend interface {
	FetchRecords(ctx context.Context, q upstream.Query) ([]attendance.Record, error)
	FetchStats(ctx context.Context, q upstream.Query) (upstream.Stats, error)
}

type AttendanceServiceImpl struct {
	store   *snapshot.Store
	backend Backend
	tracker *timer.Tracker
	hub     *sse.Hub
	now     func() time.Time

	mu      sync.Mutex
	query   upstream.Query
	handles map[string]*timer.Handle
}

func NewAttendanceService(
	store *snapshot.Store,
	backend Backend,
	tracker *timer.Tracker,
	hub *sse.Hub,
	scope config.ScopeConfig,
) *AttendanceServiceImpl {
	now := time.Now()
	return &AttendanceServiceImpl{
		store:   store,
		backend: backend,
		tracker: tracker,
		hub:     hub,
		now:     time.Now,
		query: upstream.Query{
			Month:          int(now.Month()),
			Year:           now.Year(),
			CentreIDs:      scope.CentreIDs,
			DepartmentIDs:  scope.DepartmentIDs,
			DesignationIDs: scope.DesignationIDs,
			RoleIDs:        scope.RoleIDs,
		},
		handles: make(map[string]*timer.Handle),
	}
}

// Refresh implements attendance.Service. It fetches records and stats
// concurrently, then applies the snapshot unless a newer fetch has landed in
// the meantime. The fetch sequence number is reserved before the network
// calls start, so a slow earlier fetch can never clobber a faster later one.
func (s *AttendanceServiceImpl) Refresh(ctx context.Context, req attendance.RefreshRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Month != nil && req.Year != nil {
		s.setWindow(*req.Month, *req.Year)
	}

	q := s.currentQuery()
	seq := s.store.Begin()
	fetchID := uuid.NewString()

	var (
		records []attendance.Record
		stats   upstream.Stats
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.backend.FetchRecords(gCtx, q)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.backend.FetchStats(gCtx, q)
		return err
	})

	if err := g.Wait(); err != nil {
		// Last-good snapshot stays in place; a transient backend error must
		// not blank the dashboard.
		s.hub.Broadcast(sse.Event{
			Event: sse.EventRefreshFailed,
			Data:  map[string]string{"fetch_id": fetchID, "error": err.Error()},
		})
		return fmt.Errorf("%w: %v", attendance.ErrRefreshFailed, err)
	}

	snap := snapshot.Snapshot{
		Seq:       seq,
		FetchID:   fetchID,
		FetchedAt: s.now(),
		Records:   records,
		Stats:     stats,
	}

	if err := s.store.Apply(snap); err != nil {
		slog.Info("Discarding superseded snapshot", "fetch_id", fetchID, "seq", seq)
		return nil
	}

	s.syncLive(records)

	s.hub.Broadcast(sse.Event{
		Event: sse.EventSnapshotRefreshed,
		Data: map[string]interface{}{
			"fetch_id":     fetchID,
			"record_count": len(records),
			"refreshed_at": snap.FetchedAt.Format(time.RFC3339),
		},
	})
	return nil
}

// Directory implements attendance.Service.
func (s *AttendanceServiceImpl) Directory(ctx context.Context, filter attendance.DirectoryFilter) (attendance.DirectoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DirectoryResponse{}, err
	}

	snap, ok := s.store.Current()
	if !ok {
		return attendance.DirectoryResponse{}, attendance.ErrNoSnapshot
	}

	grouped := attendance.Directory(snap.Records)
	matched := attendance.FilterDirectory(grouped, filter.Search, filter.Caution)

	now := s.now()
	entries := make([]attendance.DirectoryEntry, 0, len(matched))
	for _, r := range matched {
		entry := attendance.DirectoryEntry{
			RecordResponse: mapRecordToResponse(r),
			Live:           r.IsLive(),
		}
		if r.CheckIn != nil {
			entry.Elapsed = timer.Format(timer.Elapsed(r.CheckIn, r.CheckOut, now))
		}
		entries = append(entries, entry)
	}

	return attendance.DirectoryResponse{
		TotalCount:  len(entries),
		RefreshedAt: snap.FetchedAt.Format(time.RFC3339),
		Entries:     entries,
	}, nil
}

// Records implements attendance.Service.
func (s *AttendanceServiceImpl) Records(ctx context.Context) (attendance.ListRecordsResponse, error) {
	snap, ok := s.store.Current()
	if !ok {
		return attendance.ListRecordsResponse{}, attendance.ErrNoSnapshot
	}
	return mapRecordList(snap), nil
}

// Today implements attendance.Service.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (attendance.ListRecordsResponse, error) {
	snap, ok := s.store.Current()
	if !ok {
		return attendance.ListRecordsResponse{}, attendance.ErrNoSnapshot
	}

	today := attendance.PresentOn(snap.Records, s.now())
	responses := make([]attendance.RecordResponse, 0, len(today))
	for _, r := range today {
		responses = append(responses, mapRecordToResponse(r))
	}

	return attendance.ListRecordsResponse{
		TotalCount:  len(responses),
		RefreshedAt: snap.FetchedAt.Format(time.RFC3339),
		Records:     responses,
	}, nil
}

// Close cancels every live ticker owned by the service.
func (s *AttendanceServiceImpl) Close() {
	s.mu.Lock()
	handles := make([]*timer.Handle, 0, len(s.handles))
	for _, h := range s.handles {
		handles = append(handles, h)
	}
	s.handles = make(map[string]*timer.Handle)
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
}

// syncLive reconciles live tickers against the freshly applied snapshot:
// ticking starts for employees who are now clocked in and stops for those
// who clocked out or left the snapshot. Running -> Stopped must tear the
// ticker down; a leaked ticker is a defect.
func (s *AttendanceServiceImpl) syncLive(records []attendance.Record) {
	latest := attendance.GroupLatestPerEmployee(records)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, handle := range s.handles {
		r, ok := latest[id]
		if !ok || !r.IsLive() {
			handle.Cancel()
			delete(s.handles, id)
		}
	}

	for id, r := range latest {
		if !r.IsLive() {
			continue
		}
		if _, ok := s.handles[id]; ok {
			continue
		}

		employeeID := id
		employeeName := r.EmployeeName
		s.handles[id] = s.tracker.Track(id, *r.CheckIn, func(elapsed time.Duration) {
			s.hub.Broadcast(sse.Event{
				Event: sse.EventLiveTick,
				Data: map[string]string{
					"employee_id":   employeeID,
					"employee_name": employeeName,
					"elapsed":       timer.Format(elapsed),
				},
			})
		})
	}
}

func (s *AttendanceServiceImpl) setWindow(month, year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Month = month
	s.query.Year = year
}

func (s *AttendanceServiceImpl) currentQuery() upstream.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// timePtrToString safely converts a *time.Time to a clock string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("15:04:05")
	return &format
}

// mapRecordToResponse converts a Record entity to RecordResponse. The status
// field carries the derived label, which matches the backend label whenever
// one was supplied.
func mapRecordToResponse(r attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeCode:    r.EmployeeCode,
		EmployeeName:    r.EmployeeName,
		Department:      r.Department,
		Designation:     r.Designation,
		Centre:          r.Centre,
		ProfileImageURL: r.ProfileImageURL,
		Date:            r.Date.Format("2006-01-02"),
		CheckInTime:     timePtrToString(r.CheckIn),
		CheckOutTime:    timePtrToString(r.CheckOut),
		WorkingHours:    r.WorkingHours,
		Status:          string(attendance.ClassifyRecord(r)),
	}
}

func mapRecordList(snap snapshot.Snapshot) attendance.ListRecordsResponse {
	responses := make([]attendance.RecordResponse, 0, len(snap.Records))
	for _, r := range snap.Records {
		responses = append(responses, mapRecordToResponse(r))
	}
	return attendance.ListRecordsResponse{
		TotalCount:  len(responses),
		RefreshedAt: snap.FetchedAt.Format(time.RFC3339),
		Records:     responses,
	}
}
