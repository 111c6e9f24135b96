package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// CalculateBusinessDays counts the days in [start, end] that are
	// neither a weekend day nor a public holiday. end before start is 0.
	CalculateBusinessDays(start, end time.Time) int

	// Submit creates a pending request, deriving its business-day span
	// and, for annual leave, flagging a balance shortfall as unpaid.
	Submit(ctx context.Context, req SubmitLeaveRequest) (RequestResponse, error)

	// Approve moves a pending request to approved and deducts the span
	// from the employee's annual or sick balance.
	Approve(ctx context.Context, req ApproveLeaveRequest) (RequestResponse, error)

	// Reject moves a pending request to rejected; a reason is required.
	Reject(ctx context.Context, req RejectLeaveRequest) (RequestResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]RequestResponse, error)
}
