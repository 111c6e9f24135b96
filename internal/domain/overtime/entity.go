package overtime

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is one overtime request. Team submissions expand into one
// request per member; each follows the same pending-to-terminal machine.
type Request struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	Reason     string
	Status     Status

	RejectionReason *string
	ApproverID      *string
	ActionedDate    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
