package overtime

import (
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// OVERTIME DTOs
// ========================================

type SubmitOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // RFC3339
	EndTime    string `json:"end_time"`   // RFC3339
	Reason     string `json:"reason"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validateWindow(r.Date, r.StartTime, r.EndTime, r.Reason)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitTeamOvertimeRequest struct {
	TeamMemberIDs []string `json:"team_member_ids"`
	Date          string   `json:"date"`       // YYYY-MM-DD
	StartTime     string   `json:"start_time"` // RFC3339
	EndTime       string   `json:"end_time"`   // RFC3339
	Reason        string   `json:"reason"`
}

func (r *SubmitTeamOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateWindow(r.Date, r.StartTime, r.EndTime, r.Reason)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateWindow(date, startTime, endTime, reason string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, valid := validator.IsValidDateTime(startTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}

	if _, valid := validator.IsValidDateTime(endTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
		})
	}

	if validator.IsEmpty(reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	return errs
}

type ApproveOvertimeRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
}

type RejectOvertimeRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ApproverID      *string `json:"approver_id,omitempty"`
	ActionedDate    *string `json:"actioned_date,omitempty"`
}
