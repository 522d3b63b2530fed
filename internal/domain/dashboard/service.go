package dashboard

import (
	"context"
)

// DashboardService derives the chart and card data for the workforce
// dashboard from the latest attendance snapshot.
type DashboardService interface {
	// GetDashboard returns the combined dashboard payload.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetDepartmentRollup buckets today's present employees by department.
	GetDepartmentRollup(ctx context.Context) ([]Bucket, error)

	// GetStatusRollup buckets today's present employees by derived status.
	GetStatusRollup(ctx context.Context) ([]Bucket, error)
}
