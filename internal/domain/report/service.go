package report

import (
	"context"
	"io"
)

// ReportService serializes the raw attendance snapshot for download.
type ReportService interface {
	// BuildExport projects the full ungrouped record list into export rows.
	BuildExport(ctx context.Context) (AttendanceExport, error)

	// WriteCSV streams the export as a CSV spreadsheet.
	WriteCSV(ctx context.Context, w io.Writer) error

	// WritePDF renders the export as a PDF report.
	WritePDF(ctx context.Context, w io.Writer) error
}
