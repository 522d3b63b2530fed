package response

import (
	"errors"
	"net/http"

	"github.com/campushq/attendance-insights/internal/domain/attendance"
	"github.com/campushq/attendance-insights/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrNoSnapshot):
		ServiceUnavailable(w, "Attendance snapshot not yet available, try again shortly")
	case errors.Is(err, attendance.ErrRefreshFailed):
		BadGateway(w, "Attendance backend is unavailable, showing last-good data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
