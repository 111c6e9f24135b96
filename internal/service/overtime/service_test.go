package overtime

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/overtime"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
	"github.com/khanyisa-hr/workforce-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOvertimeService(t *testing.T, employeeIDs ...string) overtime.OvertimeService {
	t.Helper()

	requestRepo := memory.NewOvertimeRequestRepository()
	employeeRepo := memory.NewEmployeeRepository()

	for _, id := range employeeIDs {
		_, err := employeeRepo.Create(context.Background(), employee.Employee{
			ID:         id,
			FullName:   "Employee " + id,
			BranchID:   "b1",
			HourlyRate: decimal.NewFromInt(100),
			RateType:   employee.RateTypeHourly,
		})
		require.NoError(t, err)
	}

	clock := func() time.Time { return time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC) }
	return NewOvertimeService(requestRepo, employeeRepo, sse.NewHub(), WithClock(clock))
}

func submitRequest(employeeID string) overtime.SubmitOvertimeRequest {
	return overtime.SubmitOvertimeRequest{
		EmployeeID: employeeID,
		Date:       "2026-03-06",
		StartTime:  "2026-03-06T17:00:00Z",
		EndTime:    "2026-03-06T20:00:00Z",
		Reason:     "quarter-end close",
	}
}

func TestSubmit(t *testing.T) {
	svc := newOvertimeService(t, "e1")

	resp, err := svc.Submit(context.Background(), submitRequest("e1"))
	require.NoError(t, err)

	assert.Equal(t, string(overtime.StatusPending), resp.Status)
	assert.Equal(t, "2026-03-06", resp.Date)
	assert.Equal(t, "quarter-end close", resp.Reason)
	assert.NotEmpty(t, resp.ID)
}

func TestSubmitUnknownEmployee(t *testing.T) {
	svc := newOvertimeService(t)

	_, err := svc.Submit(context.Background(), submitRequest("ghost"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSubmitRejectsInvertedWindow(t *testing.T) {
	svc := newOvertimeService(t, "e1")

	req := submitRequest("e1")
	req.EndTime = "2026-03-06T16:00:00Z"

	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, overtime.ErrInvalidTimeRange)
}

func TestSubmitForTeamExpandsPerMember(t *testing.T) {
	svc := newOvertimeService(t, "e1", "e2", "e3")

	responses, err := svc.SubmitForTeam(context.Background(), overtime.SubmitTeamOvertimeRequest{
		TeamMemberIDs: []string{"e1", "e2", "e3"},
		Date:          "2026-03-06",
		StartTime:     "2026-03-06T17:00:00Z",
		EndTime:       "2026-03-06T20:00:00Z",
		Reason:        "stocktake",
	})
	require.NoError(t, err)
	require.Len(t, responses, 3)

	seen := make(map[string]bool)
	for _, resp := range responses {
		assert.Equal(t, string(overtime.StatusPending), resp.Status)
		assert.True(t, strings.HasSuffix(resp.Reason, "(team overtime)"), "reason %q", resp.Reason)
		seen[resp.EmployeeID] = true
	}
	assert.Len(t, seen, 3)
}

func TestSubmitForTeamRejectsEmptyTeam(t *testing.T) {
	svc := newOvertimeService(t)

	_, err := svc.SubmitForTeam(context.Background(), overtime.SubmitTeamOvertimeRequest{
		TeamMemberIDs: nil,
		Date:          "2026-03-06",
		StartTime:     "2026-03-06T17:00:00Z",
		EndTime:       "2026-03-06T20:00:00Z",
		Reason:        "stocktake",
	})
	assert.ErrorIs(t, err, overtime.ErrEmptyTeam)
}

func TestApprove(t *testing.T) {
	svc := newOvertimeService(t, "e1")
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, submitRequest("e1"))
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, overtime.ApproveOvertimeRequest{ID: submitted.ID, ApproverID: "mgr"})
	require.NoError(t, err)

	assert.Equal(t, string(overtime.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApproverID)
	assert.Equal(t, "mgr", *resp.ApproverID)
	assert.NotNil(t, resp.ActionedDate)
}

func TestRejectRequiresReason(t *testing.T) {
	svc := newOvertimeService(t, "e1")
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, submitRequest("e1"))
	require.NoError(t, err)

	_, err = svc.Reject(ctx, overtime.RejectOvertimeRequest{ID: submitted.ID, ApproverID: "mgr"})
	assert.ErrorIs(t, err, overtime.ErrReasonRequired)
}

func TestReject(t *testing.T) {
	svc := newOvertimeService(t, "e1")
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, submitRequest("e1"))
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, overtime.RejectOvertimeRequest{ID: submitted.ID, ApproverID: "mgr", Reason: "not budgeted"})
	require.NoError(t, err)

	assert.Equal(t, string(overtime.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "not budgeted", *resp.RejectionReason)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	svc := newOvertimeService(t, "e1")
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, submitRequest("e1"))
	require.NoError(t, err)

	_, err = svc.Reject(ctx, overtime.RejectOvertimeRequest{ID: submitted.ID, ApproverID: "mgr", Reason: "not budgeted"})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, overtime.ApproveOvertimeRequest{ID: submitted.ID, ApproverID: "mgr"})
	assert.ErrorIs(t, err, overtime.ErrAlreadyProcessed)

	_, err = svc.Reject(ctx, overtime.RejectOvertimeRequest{ID: submitted.ID, ApproverID: "mgr", Reason: "again"})
	assert.ErrorIs(t, err, overtime.ErrAlreadyProcessed)
}

func TestApproveNotFound(t *testing.T) {
	svc := newOvertimeService(t)

	_, err := svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{ID: "missing", ApproverID: "mgr"})
	assert.ErrorIs(t, err, overtime.ErrRequestNotFound)
}

func TestListByEmployee(t *testing.T) {
	svc := newOvertimeService(t, "e1", "e2")
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitRequest("e1"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, submitRequest("e2"))
	require.NoError(t, err)

	requests, err := svc.ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "e1", requests[0].EmployeeID)
}
