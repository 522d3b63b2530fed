package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/campushq/attendance-insights/internal/domain/attendance"
	"github.com/campushq/attendance-insights/internal/handler/http/response"
)

type AttendanceHandler interface {
	Directory(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Directory implements AttendanceHandler.
func (h *attendanceHandlerImpl) Directory(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DirectoryFilter{
		Search:  r.URL.Query().Get("search"),
		Caution: attendance.Caution(r.URL.Query().Get("caution")),
	}

	result, err := h.attendanceService.Directory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Records implements AttendanceHandler.
func (h *attendanceHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Records(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh implements AttendanceHandler. The body may retarget the snapshot
// window; an empty body refreshes the current one.
func (h *attendanceHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req attendance.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to unmarshal refresh request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Refresh(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Snapshot refreshed", nil)
}
