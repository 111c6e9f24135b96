package leave

import (
	"context"
	"testing"
	"time"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/leave"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
	"github.com/khanyisa-hr/workforce-backend-go/internal/repository/memory"
	holidayService "github.com/khanyisa-hr/workforce-backend-go/internal/service/holiday"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveFixture struct {
	service      leave.LeaveService
	employeeRepo *memory.EmployeeRepository
}

func newLeaveFixture(t *testing.T, annualBalance, sickBalance int) *leaveFixture {
	t.Helper()

	requestRepo := memory.NewLeaveRequestRepository()
	employeeRepo := memory.NewEmployeeRepository()

	_, err := employeeRepo.Create(context.Background(), employee.Employee{
		ID:                 "e1",
		FullName:           "Lerato Mokoena",
		BranchID:           "b1",
		HourlyRate:         decimal.NewFromInt(100),
		RateType:           employee.RateTypeHourly,
		AnnualLeaveBalance: annualBalance,
		SickLeaveBalance:   sickBalance,
	})
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC) }
	service := NewLeaveService(requestRepo, employeeRepo, holidayService.NewCalendarService(), sse.NewHub(), WithClock(clock))

	return &leaveFixture{service: service, employeeRepo: employeeRepo}
}

func TestCalculateBusinessDaysSkipsWeekends(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	// Monday through the following Monday: six weekdays.
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 6, f.service.CalculateBusinessDays(start, end))
}

func TestCalculateBusinessDaysSkipsHolidays(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	// Youth Day 2026 falls on the Tuesday of this week.
	start := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 19, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, f.service.CalculateBusinessDays(start, end))
}

func TestCalculateBusinessDaysDegenerate(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, f.service.CalculateBusinessDays(day, day.AddDate(0, 0, -1)))
	assert.Equal(t, 1, f.service.CalculateBusinessDays(day, day))

	// A single weekend day counts zero.
	saturday := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, f.service.CalculateBusinessDays(saturday, saturday))
}

func TestSubmitAnnualLeaveWithinBalance(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	resp, err := f.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Type:       "annual",
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, 5, resp.NumberOfDays)
	assert.False(t, resp.IsUnpaid)
}

func TestSubmitAnnualLeaveBeyondBalanceFlaggedUnpaid(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	// Four full working weeks, twenty business days, against a balance of
	// fifteen.
	resp, err := f.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-27",
		Type:       "annual",
	})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.NumberOfDays)
	assert.True(t, resp.IsUnpaid)
}

func TestSubmitSickLeaveNotBalanceChecked(t *testing.T) {
	f := newLeaveFixture(t, 15, 2)

	resp, err := f.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Type:       "sick",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.NumberOfDays)
	assert.False(t, resp.IsUnpaid)
}

func TestSubmitRejectsInvertedRange(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	_, err := f.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-06",
		EndDate:    "2026-03-02",
		Type:       "annual",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestApproveDeductsAnnualBalance(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Type:       "annual",
	})
	require.NoError(t, err)

	resp, err := f.service.Approve(ctx, leave.ApproveLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 10, emp.AnnualLeaveBalance)
	assert.Equal(t, 10, emp.SickLeaveBalance)
}

func TestApproveFloorsBalanceAtZero(t *testing.T) {
	f := newLeaveFixture(t, 3, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Type:       "annual",
	})
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, leave.ApproveLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	require.NoError(t, err)

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 0, emp.AnnualLeaveBalance)
}

func TestApproveDeductsSickBalance(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Type:       "sick",
	})
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, leave.ApproveLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	require.NoError(t, err)

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 8, emp.SickLeaveBalance)
	assert.Equal(t, 15, emp.AnnualLeaveBalance)
}

func TestApproveOtherLeaveLeavesBalancesAlone(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Type:       "other",
	})
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, leave.ApproveLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	require.NoError(t, err)

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 15, emp.AnnualLeaveBalance)
	assert.Equal(t, 10, emp.SickLeaveBalance)
}

func TestApproveRequiresApprover(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)

	_, err := f.service.Approve(context.Background(), leave.ApproveLeaveRequest{ID: "r1"})
	assert.ErrorIs(t, err, leave.ErrApproverRequired)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Type:       "annual",
	})
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, leave.ApproveLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, leave.ApproveLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	_, err = f.service.Reject(ctx, leave.RejectLeaveRequest{ID: submitted.ID, ApproverID: "mgr", Reason: "changed my mind"})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestRejectRequiresReason(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Type:       "annual",
	})
	require.NoError(t, err)

	_, err = f.service.Reject(ctx, leave.RejectLeaveRequest{ID: submitted.ID, ApproverID: "mgr"})
	assert.ErrorIs(t, err, leave.ErrReasonRequired)
}

func TestRejectLeavesBalanceAlone(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	submitted, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Type:       "annual",
	})
	require.NoError(t, err)

	resp, err := f.service.Reject(ctx, leave.RejectLeaveRequest{ID: submitted.ID, ApproverID: "mgr", Reason: "short staffed"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.AdminComment)
	assert.Equal(t, "short staffed", *resp.AdminComment)

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 15, emp.AnnualLeaveBalance)
}

func TestListByEmployee(t *testing.T) {
	f := newLeaveFixture(t, 15, 10)
	ctx := context.Background()

	for _, window := range [][2]string{
		{"2026-03-02", "2026-03-03"},
		{"2026-04-06", "2026-04-10"},
	} {
		_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "e1",
			StartDate:  window[0],
			EndDate:    window[1],
			Type:       "annual",
		})
		require.NoError(t, err)
	}

	requests, err := f.service.ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}
