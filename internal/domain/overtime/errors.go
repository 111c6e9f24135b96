package overtime

import "errors"

var (
	ErrRequestNotFound  = errors.New("overtime request not found")
	ErrAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
	ErrReasonRequired   = errors.New("a rejection reason is required")
	ErrEmptyTeam        = errors.New("cannot submit overtime for an empty team")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
