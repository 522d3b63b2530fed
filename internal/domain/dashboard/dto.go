package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Summary          SummaryResponse `json:"summary"`
	DepartmentRollup []Bucket        `json:"department_rollup"`
	StatusRollup     []Bucket        `json:"status_rollup"`
	Stats            StatsResponse   `json:"stats"`
}

// ========== SUMMARY CARDS ==========

// SummaryResponse feeds the headline cards above the charts.
type SummaryResponse struct {
	TotalEmployees int    `json:"total_employees"` // directory size (one per employee)
	PresentToday   int    `json:"present_today"`
	LiveNow        int    `json:"live_now"` // checked in, not yet out
	RefreshedAt    string `json:"refreshed_at"`
}

// ========== CHART BUCKETS ==========

// Bucket is one chart segment. Buckets appear in first-encounter order, not
// sorted by count; chart consumers re-sort if they want a different order.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ========== BACKEND STATS PASSTHROUGH ==========

// StatsResponse mirrors the backend-computed aggregate document. It is
// displayed as-is next to the locally derived views, never recomputed.
type StatsResponse struct {
	TotalEmployees int              `json:"total_employees"`
	AverageHours   float64          `json:"average_hours"`
	MinHours       float64          `json:"min_hours"`
	MaxHours       float64          `json:"max_hours"`
	StatusCounts   map[string]int64 `json:"status_counts"`
	DailyTrend     []TrendPoint     `json:"daily_trend"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}
