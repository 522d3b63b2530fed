package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/campushq/attendance-insights/internal/domain/report"
	"github.com/campushq/attendance-insights/internal/handler/http/response"
)

type ReportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportCSV implements ReportHandler. The document is assembled in memory
// first so an error still yields a clean JSON response instead of a
// truncated download.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reportService.WriteCSV(r.Context(), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

// ExportPDF implements ReportHandler.
func (h *reportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reportService.WritePDF(r.Context(), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}
