package leave

import "time"

type Type string

const (
	TypeAnnual Type = "annual"
	TypeSick   Type = "sick"
	TypeOther  Type = "other"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a leave request. It is created pending and transitions once
// to a terminal state; terminal states are immutable.
type Request struct {
	ID           string
	EmployeeID   string
	StartDate    time.Time
	EndDate      time.Time
	Type         Type
	NumberOfDays int
	Status       Status

	// IsUnpaid is set at submission when an annual request exceeds the
	// employee's remaining balance. It is informational.
	IsUnpaid bool

	ApproverID   *string
	ActionedDate *time.Time
	AdminComment *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
