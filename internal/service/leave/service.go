package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/leave"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	calendar holiday.Calendar
	hub      *sse.Hub
	now      func() time.Time
	runTx    func(ctx context.Context, fn func(ctx context.Context) error) error
}

type Option func(*LeaveServiceImpl)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *LeaveServiceImpl) { s.now = now }
}

// WithTxRunner makes approval's request update and balance deduction run
// inside a single storage transaction.
func WithTxRunner(runTx func(ctx context.Context, fn func(ctx context.Context) error) error) Option {
	return func(s *LeaveServiceImpl) { s.runTx = runTx }
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	calendar holiday.Calendar,
	hub *sse.Hub,
	opts ...Option,
) leave.LeaveService {
	s := &LeaveServiceImpl{
		LeaveRequestRepository: requestRepo,
		EmployeeRepository:     employeeRepo,
		calendar:               calendar,
		hub:                    hub,
		now:                    time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateBusinessDays implements leave.LeaveService.
func (s *LeaveServiceImpl) CalculateBusinessDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if s.calendar.IsHoliday(d) {
			continue
		}
		days++
	}

	return days
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.RequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	numberOfDays := s.CalculateBusinessDays(startDate, endDate)

	// Annual leave beyond the remaining balance is accepted but flagged
	// unpaid; sick and other leave are not balance-checked.
	isUnpaid := false
	if leave.Type(req.Type) == leave.TypeAnnual && numberOfDays > emp.AnnualLeaveBalance {
		isUnpaid = true
	}

	request := leave.Request{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		StartDate:    startDate,
		EndDate:      endDate,
		Type:         leave.Type(req.Type),
		NumberOfDays: numberOfDays,
		Status:       leave.StatusPending,
		IsUnpaid:     isUnpaid,
		SubmittedAt:  s.now(),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notify(sse.Change{EntityType: "leave_request", Action: sse.ActionCreated, ID: created.ID})

	return mapRequestToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.RequestResponse, error) {
	if req.ApproverID == "" {
		return leave.RequestResponse{}, leave.ErrApproverRequired
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.RequestResponse{}, leave.ErrRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	actionedAt := s.now()
	request.Status = leave.StatusApproved
	request.ApproverID = &req.ApproverID
	request.ActionedDate = &actionedAt
	request.AdminComment = req.Comment

	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return s.deductBalance(ctx, request)
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.notify(sse.Change{EntityType: "leave_request", Action: sse.ActionUpdated, ID: request.ID})

	return mapRequestToResponse(request), nil
}

// deductBalance charges an approved request against the employee's
// balance for the matching leave type, floored at zero.
func (s *LeaveServiceImpl) deductBalance(ctx context.Context, request leave.Request) error {
	if request.Type == leave.TypeOther {
		return nil
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	switch request.Type {
	case leave.TypeAnnual:
		emp.AnnualLeaveBalance = max(0, emp.AnnualLeaveBalance-request.NumberOfDays)
	case leave.TypeSick:
		emp.SickLeaveBalance = max(0, emp.SickLeaveBalance-request.NumberOfDays)
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return fmt.Errorf("failed to update employee balance: %w", err)
	}

	return nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.RequestResponse, error) {
	if req.Reason == "" {
		return leave.RequestResponse{}, leave.ErrReasonRequired
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.RequestResponse{}, leave.ErrRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	actionedAt := s.now()
	request.Status = leave.StatusRejected
	request.ApproverID = &req.ApproverID
	request.ActionedDate = &actionedAt
	request.AdminComment = &req.Reason

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notify(sse.Change{EntityType: "leave_request", Action: sse.ActionUpdated, ID: request.ID})

	return mapRequestToResponse(request), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	return responses, nil
}

func (s *LeaveServiceImpl) notify(change sse.Change) {
	if s.hub != nil {
		s.hub.Publish(change)
	}
}

func mapRequestToResponse(request leave.Request) leave.RequestResponse {
	var actionedDate *string
	if request.ActionedDate != nil {
		formatted := request.ActionedDate.Format(time.RFC3339)
		actionedDate = &formatted
	}

	return leave.RequestResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Type:         string(request.Type),
		NumberOfDays: request.NumberOfDays,
		Status:       string(request.Status),
		IsUnpaid:     request.IsUnpaid,
		ApproverID:   request.ApproverID,
		ActionedDate: actionedDate,
		AdminComment: request.AdminComment,
	}
}
