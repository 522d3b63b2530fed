package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/campushq/attendance-insights/internal/domain/attendance"
	"github.com/campushq/attendance-insights/internal/domain/report"
	"github.com/campushq/attendance-insights/internal/pkg/snapshot"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

var exportHeader = []string{
	"Employee Code", "Name", "Centre", "Department", "Designation",
	"Date", "Check In", "Check Out", "Duration (h)", "Status",
}

type ReportServiceImpl struct {
	store *snapshot.Store
}

func NewReportService(store *snapshot.Store) report.ReportService {
	return &ReportServiceImpl{
		store: store,
	}
}

// BuildExport implements report.ReportService. Every raw record becomes
// exactly one row; nothing is grouped or dropped.
func (s *ReportServiceImpl) BuildExport(ctx context.Context) (report.AttendanceExport, error) {
	snap, ok := s.store.Current()
	if !ok {
		return report.AttendanceExport{}, attendance.ErrNoSnapshot
	}

	rows := make([]report.ExportRow, 0, len(snap.Records))
	for _, r := range snap.Records {
		rows = append(rows, report.ExportRow{
			EmployeeCode:  r.EmployeeCode,
			EmployeeName:  r.EmployeeName,
			Centre:        r.Centre,
			Department:    r.Department,
			Designation:   r.Designation,
			Date:          r.Date.Format("2006-01-02"),
			CheckInTime:   clockString(r.CheckIn),
			CheckOutTime:  clockString(r.CheckOut),
			DurationHours: r.WorkingHours,
			Status:        string(attendance.ClassifyRecord(r)),
		})
	}

	return report.AttendanceExport{
		ReportID:    uuid.NewString(),
		FetchID:     snap.FetchID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		RowCount:    len(rows),
		Rows:        rows,
	}, nil
}

// WriteCSV implements report.ReportService.
func (s *ReportServiceImpl) WriteCSV(ctx context.Context, w io.Writer) error {
	export, err := s.BuildExport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range export.Rows {
		record := []string{
			row.EmployeeCode,
			row.EmployeeName,
			row.Centre,
			row.Department,
			row.Designation,
			row.Date,
			row.CheckInTime,
			row.CheckOutTime,
			strconv.FormatFloat(row.DurationHours, 'f', 2, 64),
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePDF implements report.ReportService.
func (s *ReportServiceImpl) WritePDF(ctx context.Context, w io.Writer) error {
	export, err := s.BuildExport(ctx)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Workforce Attendance Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s  Records: %d", export.GeneratedAt, export.RowCount))
	pdf.Ln(8)

	widths := []float64{24, 42, 28, 32, 32, 22, 20, 20, 22, 28}

	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range exportHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range export.Rows {
		cells := []string{
			row.EmployeeCode,
			row.EmployeeName,
			row.Centre,
			row.Department,
			row.Designation,
			row.Date,
			row.CheckInTime,
			row.CheckOutTime,
			strconv.FormatFloat(row.DurationHours, 'f', 2, 64),
			row.Status,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func clockString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}
