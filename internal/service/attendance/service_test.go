package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/branch"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
	"github.com/khanyisa-hr/workforce-backend-go/internal/repository/memory"
	holidayService "github.com/khanyisa-hr/workforce-backend-go/internal/service/holiday"
	payrollService "github.com/khanyisa-hr/workforce-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	service        attendance.AttendanceService
	attendanceRepo *memory.AttendanceRepository
	employeeRepo   *memory.EmployeeRepository
	clock          *fakeClock
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newLedgerFixture(t *testing.T, branchName string) *ledgerFixture {
	t.Helper()
	ctx := context.Background()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	branchRepo := memory.NewBranchRepository()

	_, err := branchRepo.Create(ctx, branch.Branch{ID: "b1", Name: branchName, Timezone: "Africa/Johannesburg"})
	require.NoError(t, err)
	_, err = employeeRepo.Create(ctx, employee.Employee{
		ID:         "e1",
		FullName:   "Sipho Dlamini",
		BranchID:   "b1",
		HourlyRate: decimal.NewFromInt(100),
		RateType:   employee.RateTypeHourly,
	})
	require.NoError(t, err)

	// Monday morning, on time.
	clock := &fakeClock{now: time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)}

	calendar := holidayService.NewCalendarService()
	wageService := payrollService.NewWageService(calendar, employeeRepo, branchRepo)
	service := NewLedgerService(attendanceRepo, employeeRepo, branchRepo, wageService, sse.NewHub(), WithClock(clock.Now))

	return &ledgerFixture{
		service:        service,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clock,
	}
}

func TestClockInOnTime(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")

	resp, err := f.service.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
	require.NotNil(t, resp.ClockInTime)
	assert.Nil(t, resp.ClockOutTime)
	assert.True(t, resp.CachedHourlyRate.Equal(decimal.NewFromInt(100)))
}

func TestClockInLate(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	f.clock.Set(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))

	resp, err := f.service.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClockInWithinGraceIsPresent(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	f.clock.Set(time.Date(2026, time.March, 2, 8, 10, 0, 0, time.UTC))

	resp, err := f.service.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockInRejectedWhileShiftOpen(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	first, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	_, err = f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	var conflict *attendance.OpenShiftError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.OpenRecordID)
}

func TestClockInConcurrentOnlyOneWins(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes, conflicts := 0, 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		var conflict *attendance.OpenShiftError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

func TestClockOutAtEndOfDay(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	f.clock.Set(time.Date(2026, time.March, 2, 16, 5, 0, 0, time.UTC))
	resp, err := f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.ClockOutTime)
}

func TestClockOutWithinToleranceIsPresent(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	// 15:50 is inside the fifteen-minute window before the 16:00 end.
	f.clock.Set(time.Date(2026, time.March, 2, 15, 50, 0, 0, time.UTC))
	resp, err := f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockOutEarlyRequiresReason(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	f.clock.Set(time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC))
	_, err = f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1"})
	assert.ErrorIs(t, err, attendance.ErrLeaveEarlyReasonRequired)

	reason := "doctor's appointment"
	resp, err := f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1", LeaveReason: &reason})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLeaveEarly), resp.Status)
	require.NotNil(t, resp.LeaveReason)
	assert.Equal(t, reason, *resp.LeaveReason)
}

func TestClockOutCapeBranchUsesLongerDay(t *testing.T) {
	f := newLedgerFixture(t, "Cape Town")
	ctx := context.Background()

	_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	// 16:05 is early for a Cape branch, which runs to 17:00.
	f.clock.Set(time.Date(2026, time.March, 2, 16, 5, 0, 0, time.UTC))
	_, err = f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1"})
	assert.ErrorIs(t, err, attendance.ErrLeaveEarlyReasonRequired)
}

func TestClockOutOvernightShiftNotEarly(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	// Shift opens Monday evening and closes past midnight. The scheduled
	// end belongs to Monday, so Tuesday 02:00 is not an early leave.
	f.clock.Set(time.Date(2026, time.March, 2, 20, 0, 0, 0, time.UTC))
	_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	f.clock.Set(time.Date(2026, time.March, 3, 2, 0, 0, 0, time.UTC))
	resp, err := f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockOutWithoutOpenShift(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")

	_, err := f.service.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: "e1"})
	assert.ErrorIs(t, err, attendance.ErrNoOpenShift)
}

func TestSplitShiftsSameDay(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	_, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	reason := "split shift"
	f.clock.Set(time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC))
	_, err = f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1", LeaveReason: &reason})
	require.NoError(t, err)

	// A second shift on the same day is fine once the first is closed.
	f.clock.Set(time.Date(2026, time.March, 2, 13, 0, 0, 0, time.UTC))
	second, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", second.Date)
}

func TestMarkAbsent(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")

	reason := "no show"
	resp, err := f.service.MarkAbsent(context.Background(), attendance.MarkAbsentRequest{
		EmployeeID: "e1",
		Date:       "2026-03-02",
		Reason:     &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusAbsent), resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Nil(t, resp.ClockInTime)
	assert.Nil(t, resp.ClockOutTime)
}

func TestMarkAbsentRejectedWhileShiftOpen(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	open, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	_, err = f.service.MarkAbsent(ctx, attendance.MarkAbsentRequest{EmployeeID: "e1", Date: "2026-03-02"})
	var conflict *attendance.OpenShiftError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, open.ID, conflict.OpenRecordID)
}

func TestCorrectRecord(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	created, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	clockIn := "2026-03-03T09:00:00Z"
	clockOut := "2026-03-03T17:00:00Z"
	resp, err := f.service.CorrectRecord(ctx, attendance.CorrectRecordRequest{
		ID:           created.ID,
		ClockInTime:  &clockIn,
		ClockOutTime: &clockOut,
	})
	require.NoError(t, err)

	// The date follows the corrected clock-in.
	assert.Equal(t, "2026-03-03", resp.Date)
	require.NotNil(t, resp.ClockOutTime)
	assert.Equal(t, clockOut, *resp.ClockOutTime)
}

func TestCorrectRecordRejectsInvertedTimes(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	created, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	clockOut := "2026-03-02T06:00:00Z"
	_, err = f.service.CorrectRecord(ctx, attendance.CorrectRecordRequest{
		ID:           created.ID,
		ClockOutTime: &clockOut,
	})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeClockIn)
}

func TestCorrectRecordNotFound(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")

	clockIn := "2026-03-02T09:00:00Z"
	_, err := f.service.CorrectRecord(context.Background(), attendance.CorrectRecordRequest{
		ID:          "missing",
		ClockInTime: &clockIn,
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestCurrentEarningsOpenShiftGrows(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	created, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	f.clock.Set(time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC))
	first, err := f.service.CurrentEarnings(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, first.Open)
	assert.True(t, first.GrossWage.Equal(decimal.NewFromInt(400)), "got %s", first.GrossWage)

	f.clock.Set(time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC))
	second, err := f.service.CurrentEarnings(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, second.GrossWage.GreaterThan(first.GrossWage))
}

func TestCurrentEarningsClosedShift(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	created, err := f.service.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	f.clock.Set(time.Date(2026, time.March, 2, 16, 0, 0, 0, time.UTC))
	_, err = f.service.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	// Advancing the clock does not change a closed shift's earnings.
	f.clock.Set(time.Date(2026, time.March, 2, 20, 0, 0, 0, time.UTC))
	resp, err := f.service.CurrentEarnings(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.True(t, resp.GrossWage.Equal(decimal.NewFromInt(800)), "got %s", resp.GrossWage)
}

func TestListRecords(t *testing.T) {
	f := newLedgerFixture(t, "Johannesburg")
	ctx := context.Background()

	_, err := f.service.MarkAbsent(ctx, attendance.MarkAbsentRequest{EmployeeID: "e1", Date: "2026-03-02"})
	require.NoError(t, err)
	_, err = f.service.MarkAbsent(ctx, attendance.MarkAbsentRequest{EmployeeID: "e1", Date: "2026-03-04"})
	require.NoError(t, err)

	records, err := f.service.ListRecords(ctx, attendance.ListRecordsFilter{
		EmployeeID: "e1",
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-03",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-03-02", records[0].Date)
}
