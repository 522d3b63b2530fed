package attendance

import (
	"time"
)

// Record is one employee-day attendance entry as served by the attendance
// backend. This service only ever reads records; they are created and
// mutated upstream.
type Record struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkingHours float64
	Status       string

	// Denormalized employee display fields, flattened by the backend so no
	// join logic lives here.
	EmployeeCode    string
	EmployeeName    string
	Department      string
	Designation     string
	Centre          string
	ProfileImageURL string
}

// HasCheckout reports whether the employee has clocked out. WorkingHours is
// only meaningful when this is true.
func (r Record) HasCheckout() bool {
	return r.CheckOut != nil
}

// IsLive reports whether the employee is currently clocked in.
func (r Record) IsLive() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}

// OnDate reports whether the record applies to the same calendar day as t.
func (r Record) OnDate(t time.Time) bool {
	ry, rm, rd := r.Date.Date()
	ty, tm, td := t.Date()
	return ry == ty && rm == tm && rd == td
}
