package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/retailops/timeclock-backend-go/internal/domain/employee"
	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/retailops/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Timeclock domain errors
	switch {
	case errors.Is(err, timeclock.ErrAlreadyClockedIn):
		BadRequest(w, "Already clocked in today", nil)
	case errors.Is(err, timeclock.ErrNotClockedIn):
		BadRequest(w, "No active clock in record found", nil)
	case errors.Is(err, timeclock.ErrRecordNotFound):
		NotFound(w, "Clock record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrHasClockRecords):
		BadRequest(w, "Cannot delete employee with existing clock records. Please delete their records first.", nil)

	// Default: storage faults and anything unexpected. Never retried; the
	// caller simply re-invokes the operation.
	default:
		slog.Error("Unexpected error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
