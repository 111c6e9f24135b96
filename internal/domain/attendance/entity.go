package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusLate       Status = "late"
	StatusLeaveEarly Status = "leave_early"
)

// Record is one attendance entry. A record with a nil ClockOut is an open
// shift; the ledger guarantees at most one open shift per employee across
// all days, since a shift may span midnight.
type Record struct {
	ID          string
	EmployeeID  string
	BranchID    string
	Date        time.Time
	ClockIn     *time.Time
	ClockOut    *time.Time
	Status      Status
	LeaveReason *string

	// CachedHourlyRate is snapshotted at clock-in so later rate changes
	// never touch in-progress or historical wage computation.
	CachedHourlyRate decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
