package report

// ExportRow is one spreadsheet line. The export is a straight projection of
// the raw ungrouped record list; the directory de-duplication is never
// applied here, so row count always equals the snapshot record count.
type ExportRow struct {
	EmployeeCode  string  `json:"employee_code"`
	EmployeeName  string  `json:"employee_name"`
	Centre        string  `json:"centre"`
	Department    string  `json:"department"`
	Designation   string  `json:"designation"`
	Date          string  `json:"date"`
	CheckInTime   string  `json:"check_in_time"`
	CheckOutTime  string  `json:"check_out_time"`
	DurationHours float64 `json:"duration_hours"`
	Status        string  `json:"status"`
}

// AttendanceExport is the assembled export document.
type AttendanceExport struct {
	ReportID    string      `json:"report_id"`
	FetchID     string      `json:"fetch_id"`
	GeneratedAt string      `json:"generated_at"`
	RowCount    int         `json:"row_count"`
	Rows        []ExportRow `json:"rows"`
}
