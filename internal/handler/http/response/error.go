package response

import (
	"errors"
	"net/http"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/auth"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/branch"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/leave"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/overtime"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var openShift *attendance.OpenShiftError
	if errors.As(err, &openShift) {
		Conflict(w, openShift.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTerminalNotFound):
		NotFound(w, "Terminal not found")

	// Employee and branch domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoOpenShift):
		NotFound(w, "No open shift for employee")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrLeaveEarlyReasonRequired):
		BadRequest(w, "Leaving early requires a reason", nil)
	case errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock-out must not be before clock-in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrReasonRequired):
		BadRequest(w, "Rejection requires a reason", nil)
	case errors.Is(err, leave.ErrApproverRequired):
		BadRequest(w, "Approver is required", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrReasonRequired):
		BadRequest(w, "Rejection requires a reason", nil)
	case errors.Is(err, overtime.ErrEmptyTeam):
		BadRequest(w, "Team must contain at least one member", nil)
	case errors.Is(err, overtime.ErrInvalidTimeRange):
		BadRequest(w, "End time must be after start time", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
