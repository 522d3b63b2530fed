package dashboard

import (
	"context"
	"time"

	"github.com/campushq/attendance-insights/internal/domain/attendance"
	"github.com/campushq/attendance-insights/internal/domain/dashboard"
	"github.com/campushq/attendance-insights/internal/pkg/snapshot"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	store *snapshot.Store
	now   func() time.Time
}

func NewDashboardService(store *snapshot.Store) dashboard.DashboardService {
	return &DashboardServiceImpl{
		store: store,
		now:   time.Now,
	}
}

// RollupByDepartment buckets records by department name, with missing names
// under "Unknown". The sum of bucket values always equals len(records):
// every record lands in exactly one bucket. Output order is first-encounter
// order.
func RollupByDepartment(records []attendance.Record) []dashboard.Bucket {
	index := make(map[string]int, len(records))
	buckets := make([]dashboard.Bucket, 0)
	for _, r := range records {
		name := r.Department
		if name == "" {
			name = "Unknown"
		}
		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, dashboard.Bucket{Name: name})
		}
		buckets[i].Value++
	}
	return buckets
}

// RollupByStatus buckets records by their derived status label, same
// invariants as RollupByDepartment.
func RollupByStatus(records []attendance.Record) []dashboard.Bucket {
	index := make(map[string]int, len(records))
	buckets := make([]dashboard.Bucket, 0)
	for _, r := range records {
		name := string(attendance.ClassifyRecord(r))
		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, dashboard.Bucket{Name: name})
		}
		buckets[i].Value++
	}
	return buckets
}

// GetDashboard returns the combined dashboard payload, deriving the three
// views from one consistent snapshot in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	snap, ok := s.store.Current()
	if !ok {
		return nil, attendance.ErrNoSnapshot
	}

	today := attendance.PresentOn(snap.Records, s.now())

	var (
		summary          dashboard.SummaryResponse
		departmentRollup []dashboard.Bucket
		statusRollup     []dashboard.Bucket
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		directory := attendance.Directory(snap.Records)
		live := 0
		for _, r := range directory {
			if r.IsLive() {
				live++
			}
		}
		summary = dashboard.SummaryResponse{
			TotalEmployees: len(directory),
			PresentToday:   len(today),
			LiveNow:        live,
			RefreshedAt:    snap.FetchedAt.Format(time.RFC3339),
		}
		return nil
	})

	g.Go(func() error {
		departmentRollup = RollupByDepartment(today)
		return nil
	})

	g.Go(func() error {
		statusRollup = RollupByStatus(today)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Summary:          summary,
		DepartmentRollup: departmentRollup,
		StatusRollup:     statusRollup,
		Stats: dashboard.StatsResponse{
			TotalEmployees: snap.Stats.TotalEmployees,
			AverageHours:   snap.Stats.AverageHours,
			MinHours:       snap.Stats.MinHours,
			MaxHours:       snap.Stats.MaxHours,
			StatusCounts:   snap.Stats.StatusCounts,
			DailyTrend:     mapTrend(snap),
		},
	}, nil
}

// GetDepartmentRollup implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDepartmentRollup(ctx context.Context) ([]dashboard.Bucket, error) {
	snap, ok := s.store.Current()
	if !ok {
		return nil, attendance.ErrNoSnapshot
	}
	return RollupByDepartment(attendance.PresentOn(snap.Records, s.now())), nil
}

// GetStatusRollup implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStatusRollup(ctx context.Context) ([]dashboard.Bucket, error) {
	snap, ok := s.store.Current()
	if !ok {
		return nil, attendance.ErrNoSnapshot
	}
	return RollupByStatus(attendance.PresentOn(snap.Records, s.now())), nil
}

func mapTrend(snap snapshot.Snapshot) []dashboard.TrendPoint {
	points := make([]dashboard.TrendPoint, 0, len(snap.Stats.DailyTrend))
	for _, p := range snap.Stats.DailyTrend {
		points = append(points, dashboard.TrendPoint{
			Date:    p.Date,
			Present: p.Present,
			Absent:  p.Absent,
		})
	}
	return points
}
