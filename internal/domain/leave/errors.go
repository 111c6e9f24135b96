package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrReasonRequired   = errors.New("a rejection reason is required")
	ErrApproverRequired = errors.New("an approver is required")
	ErrInvalidDateRange = errors.New("end date cannot precede start date")
)
