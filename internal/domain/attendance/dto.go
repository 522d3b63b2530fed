package attendance

import (
	"github.com/campushq/attendance-insights/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// DirectoryFilter is an immutable per-request filter value. It is threaded
// into each derivation call rather than held as shared state, so a background
// snapshot refresh can never reset a caller's selections.
type DirectoryFilter struct {
	Search  string  `json:"search,omitempty"`
	Caution Caution `json:"caution,omitempty"`
}

func (f *DirectoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if !f.Caution.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "caution",
			Message: "caution must be one of: overtime, early_leave, half_day, short_leave, forgot_checkout",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeCode    string  `json:"employee_code"`
	EmployeeName    string  `json:"employee_name"`
	Department      string  `json:"department"`
	Designation     string  `json:"designation"`
	Centre          string  `json:"centre"`
	ProfileImageURL string  `json:"profile_image_url,omitempty"`
	Date            string  `json:"date"`
	CheckInTime     *string `json:"check_in_time,omitempty"`
	CheckOutTime    *string `json:"check_out_time,omitempty"`
	WorkingHours    float64 `json:"working_hours"`
	Status          string  `json:"status"`
}

// DirectoryEntry is one employee row in the directory view: the latest record
// plus the derived label and, while the employee is clocked in, the live
// elapsed duration.
type DirectoryEntry struct {
	RecordResponse
	Live    bool   `json:"live"`
	Elapsed string `json:"elapsed,omitempty"` // "1h 30m", never seconds
}

type DirectoryResponse struct {
	TotalCount  int              `json:"total_count"`
	RefreshedAt string           `json:"refreshed_at"`
	Entries     []DirectoryEntry `json:"entries"`
}

type ListRecordsResponse struct {
	TotalCount  int              `json:"total_count"`
	RefreshedAt string           `json:"refreshed_at"`
	Records     []RecordResponse `json:"records"`
}

// RefreshRequest optionally retargets the snapshot window before fetching.
type RefreshRequest struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year != nil && !validator.IsValidYear(*r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if (r.Month == nil) != (r.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
