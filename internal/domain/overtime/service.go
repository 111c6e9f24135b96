package overtime

import "context"

type OvertimeService interface {
	// Submit creates one pending overtime request.
	Submit(ctx context.Context, req SubmitOvertimeRequest) (RequestResponse, error)

	// SubmitForTeam expands a shared window into one pending request per
	// team member and returns all of them. An empty team is rejected.
	SubmitForTeam(ctx context.Context, req SubmitTeamOvertimeRequest) ([]RequestResponse, error)

	// Approve moves a pending request to approved.
	Approve(ctx context.Context, req ApproveOvertimeRequest) (RequestResponse, error)

	// Reject moves a pending request to rejected; a reason is required.
	Reject(ctx context.Context, req RejectOvertimeRequest) (RequestResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]RequestResponse, error)
}
