package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrNoOpenShift              = errors.New("you have not clocked in yet")
	ErrRecordNotFound           = errors.New("attendance record not found")
	ErrLeaveEarlyReasonRequired = errors.New("a reason is required when leaving before the scheduled end of day")
	ErrClockOutBeforeClockIn    = errors.New("clock-out time cannot precede clock-in time")
)

// OpenShiftError is returned when an operation is blocked by an existing
// open shift. It carries the blocking record's ID so the caller can
// resolve the conflict instead of failing blind.
type OpenShiftError struct {
	OpenRecordID string
}

func (e *OpenShiftError) Error() string {
	return fmt.Sprintf("employee already has an open shift (record %s)", e.OpenRecordID)
}
