// Package upstream is the client for the attendance-capture backend. The
// backend owns every record; this service only reads filtered snapshots and
// the server-computed stats document.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/campushq/attendance-insights/internal/domain/attendance"
)

// Query is the server-side filter scope for a snapshot fetch.
type Query struct {
	Month          int
	Year           int
	CentreIDs      []string
	DepartmentIDs  []string
	DesignationIDs []string
	RoleIDs        []string
}

func (q Query) values() url.Values {
	v := url.Values{}
	v.Set("month", strconv.Itoa(q.Month))
	v.Set("year", strconv.Itoa(q.Year))
	if len(q.CentreIDs) > 0 {
		v.Set("centre_ids", strings.Join(q.CentreIDs, ","))
	}
	if len(q.DepartmentIDs) > 0 {
		v.Set("department_ids", strings.Join(q.DepartmentIDs, ","))
	}
	if len(q.DesignationIDs) > 0 {
		v.Set("designation_ids", strings.Join(q.DesignationIDs, ","))
	}
	if len(q.RoleIDs) > 0 {
		v.Set("role_ids", strings.Join(q.RoleIDs, ","))
	}
	return v
}

// Stats is the aggregate document computed by the backend. It is displayed
// alongside the locally derived views and never recomputed here.
type Stats struct {
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

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type recordPayload struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeCode    string  `json:"employee_code"`
	EmployeeName    string  `json:"employee_name"`
	Department      string  `json:"department"`
	Designation     string  `json:"designation"`
	Centre          string  `json:"centre"`
	ProfileImageURL string  `json:"profile_image_url"`
	Date            string  `json:"date"`
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	WorkingHours    float64 `json:"working_hours"`
	Status          string  `json:"status"`
}

type recordsEnvelope struct {
	Success bool            `json:"success"`
	Data    []recordPayload `json:"data"`
}

type statsEnvelope struct {
	Success bool  `json:"success"`
	Data    Stats `json:"data"`
}

// FetchRecords returns the attendance snapshot for the query scope. The
// backend serves records sorted newest-first; grouping downstream relies on
// that ordering.
func (c *Client) FetchRecords(ctx context.Context, q Query) ([]attendance.Record, error) {
	var envelope recordsEnvelope
	if err := c.get(ctx, "/attendance", q, &envelope); err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		r, err := p.toRecord()
		if err != nil {
			return nil, fmt.Errorf("malformed attendance record %q: %w", p.ID, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// FetchStats returns the backend-computed aggregate stats for the query scope.
func (c *Client) FetchStats(ctx context.Context, q Query) (Stats, error) {
	var envelope statsEnvelope
	if err := c.get(ctx, "/attendance/stats", q, &envelope); err != nil {
		return Stats{}, err
	}
	return envelope.Data, nil
}

func (c *Client) get(ctx context.Context, path string, q Query, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, q.values().Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("attendance backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("attendance backend returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode attendance backend response: %w", err)
	}
	return nil
}

func (p recordPayload) toRecord() (attendance.Record, error) {
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("invalid date %q: %w", p.Date, err)
	}

	parseTime := func(s *string) (*time.Time, error) {
		if s == nil || *s == "" {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339, *s)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", *s, err)
		}
		return &t, nil
	}

	checkIn, err := parseTime(p.CheckIn)
	if err != nil {
		return attendance.Record{}, err
	}
	checkOut, err := parseTime(p.CheckOut)
	if err != nil {
		return attendance.Record{}, err
	}

	return attendance.Record{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		Date:            date,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		WorkingHours:    p.WorkingHours,
		Status:          p.Status,
		EmployeeCode:    p.EmployeeCode,
		EmployeeName:    p.EmployeeName,
		Department:      p.Department,
		Designation:     p.Designation,
		Centre:          p.Centre,
		ProfileImageURL: p.ProfileImageURL,
	}, nil
}
