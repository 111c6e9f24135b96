package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/branch"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
)

// earlyLeaveTolerance is how far before the branch's scheduled end of day
// an employee may clock out without giving a reason. The same tolerance is
// used for late arrival after the scheduled start.
const earlyLeaveTolerance = 15 * time.Minute

type LedgerServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	branch.BranchRepository
	wageService payroll.WageService
	hub         *sse.Hub
	now         func() time.Time
}

// Option configures a LedgerServiceImpl.
type Option func(*LedgerServiceImpl)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerServiceImpl) { s.now = now }
}

func NewLedgerService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	wageService payroll.WageService,
	hub *sse.Hub,
	opts ...Option,
) attendance.AttendanceService {
	s := &LedgerServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		BranchRepository:     branchRepo,
		wageService:          wageService,
		hub:                  hub,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClockIn implements attendance.AttendanceService.
func (s *LedgerServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	br, err := s.BranchRepository.GetByID(ctx, emp.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, branch.ErrBranchNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	now := s.now()

	status := attendance.StatusPresent
	if now.After(br.DayStart(now).Add(earlyLeaveTolerance)) {
		status = attendance.StatusLate
	}

	rec := attendance.Record{
		ID:               uuid.New().String(),
		EmployeeID:       emp.ID,
		BranchID:         emp.BranchID,
		Date:             truncateToDay(now),
		ClockIn:          &now,
		Status:           status,
		CachedHourlyRate: emp.HourlyRate,
	}

	// The repository performs the open-shift check and the insert as one
	// atomic step; two racing clock-ins cannot both succeed.
	created, err := s.AttendanceRepository.CreateOpenShift(ctx, rec)
	if err != nil {
		var conflict *attendance.OpenShiftError
		if errors.As(err, &conflict) {
			return attendance.RecordResponse{}, conflict
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	s.notify(sse.Change{EntityType: "attendance", Action: sse.ActionCreated, ID: created.ID})

	return mapRecordToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *LedgerServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	open, err := s.AttendanceRepository.GetOpenShift(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get open shift: %w", err)
	}
	if open == nil {
		return attendance.RecordResponse{}, attendance.ErrNoOpenShift
	}

	br, err := s.BranchRepository.GetByID(ctx, open.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, branch.ErrBranchNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	now := s.now()

	// The scheduled end belongs to the day the shift opened on, so a
	// shift that crossed midnight is never treated as an early leave.
	scheduledEnd := br.DayEnd(*open.ClockIn)

	if now.Before(scheduledEnd.Add(-earlyLeaveTolerance)) {
		if req.LeaveReason == nil || *req.LeaveReason == "" {
			return attendance.RecordResponse{}, attendance.ErrLeaveEarlyReasonRequired
		}
		open.Status = attendance.StatusLeaveEarly
		open.LeaveReason = req.LeaveReason
	} else {
		open.Status = attendance.StatusPresent
	}

	open.ClockOut = &now

	if err := s.AttendanceRepository.Update(ctx, *open); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	s.notify(sse.Change{EntityType: "attendance", Action: sse.ActionUpdated, ID: open.ID})

	return mapRecordToResponse(*open), nil
}

// MarkAbsent implements attendance.AttendanceService.
func (s *LedgerServiceImpl) MarkAbsent(ctx context.Context, req attendance.MarkAbsentRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	open, err := s.AttendanceRepository.GetOpenShift(ctx, emp.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get open shift: %w", err)
	}
	if open != nil {
		return attendance.RecordResponse{}, &attendance.OpenShiftError{OpenRecordID: open.ID}
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rec := attendance.Record{
		ID:               uuid.New().String(),
		EmployeeID:       emp.ID,
		BranchID:         emp.BranchID,
		Date:             date,
		Status:           attendance.StatusAbsent,
		LeaveReason:      req.Reason,
		CachedHourlyRate: emp.HourlyRate,
	}

	created, err := s.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create absence record: %w", err)
	}

	s.notify(sse.Change{EntityType: "attendance", Action: sse.ActionCreated, ID: created.ID})

	return mapRecordToResponse(created), nil
}

// CorrectRecord implements attendance.AttendanceService.
func (s *LedgerServiceImpl) CorrectRecord(ctx context.Context, req attendance.CorrectRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if req.ClockInTime != nil {
		clockIn, _ := time.Parse(time.RFC3339, *req.ClockInTime)
		rec.ClockIn = &clockIn
		rec.Date = truncateToDay(clockIn)
	}
	if req.ClockOutTime != nil {
		clockOut, _ := time.Parse(time.RFC3339, *req.ClockOutTime)
		rec.ClockOut = &clockOut
	}

	if rec.ClockIn != nil && rec.ClockOut != nil && rec.ClockOut.Before(*rec.ClockIn) {
		return attendance.RecordResponse{}, attendance.ErrClockOutBeforeClockIn
	}

	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	s.notify(sse.Change{EntityType: "attendance", Action: sse.ActionUpdated, ID: rec.ID})

	return mapRecordToResponse(rec), nil
}

// CurrentEarnings implements attendance.AttendanceService.
func (s *LedgerServiceImpl) CurrentEarnings(ctx context.Context, recordID string) (attendance.EarningsResponse, error) {
	rec, err := s.AttendanceRepository.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.EarningsResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.EarningsResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return attendance.EarningsResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	br, err := s.BranchRepository.GetByID(ctx, rec.BranchID)
	if err != nil {
		return attendance.EarningsResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	var start time.Time
	if rec.ClockIn != nil {
		start = *rec.ClockIn
	}

	asOf := s.now()
	end := asOf
	open := rec.ClockOut == nil
	if !open {
		end = *rec.ClockOut
	}

	wage := s.wageService.CalculateWage(start, end, rec.CachedHourlyRate, emp.RateType, br)

	return attendance.EarningsResponse{
		RecordID:  rec.ID,
		GrossWage: wage,
		Open:      open,
		AsOf:      asOf.Format(time.RFC3339),
	}, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *LedgerServiceImpl) ListRecords(ctx context.Context, filter attendance.ListRecordsFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from := time.Time{}
	to := s.now()
	if filter.StartDate != "" {
		from, _ = time.Parse("2006-01-02", filter.StartDate)
	}
	if filter.EndDate != "" {
		to, _ = time.Parse("2006-01-02", filter.EndDate)
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, filter.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

func (s *LedgerServiceImpl) notify(change sse.Change) {
	if s.hub != nil {
		s.hub.Publish(change)
	}
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		BranchID:         rec.BranchID,
		Date:             rec.Date.Format("2006-01-02"),
		ClockInTime:      timePtrToString(rec.ClockIn),
		ClockOutTime:     timePtrToString(rec.ClockOut),
		Status:           string(rec.Status),
		LeaveReason:      rec.LeaveReason,
		CachedHourlyRate: rec.CachedHourlyRate,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
