package overtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/overtime"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRequestRepository
	employee.EmployeeRepository
	hub   *sse.Hub
	now   func() time.Time
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

type Option func(*OvertimeServiceImpl)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *OvertimeServiceImpl) { s.now = now }
}

// WithTxRunner makes team submission create all member requests inside a
// single storage transaction, so a mid-batch failure leaves nothing behind.
func WithTxRunner(runTx func(ctx context.Context, fn func(ctx context.Context) error) error) Option {
	return func(s *OvertimeServiceImpl) { s.runTx = runTx }
}

func NewOvertimeService(
	requestRepo overtime.OvertimeRequestRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
	opts ...Option,
) overtime.OvertimeService {
	s := &OvertimeServiceImpl{
		OvertimeRequestRepository: requestRepo,
		EmployeeRepository:        employeeRepo,
		hub:                       hub,
		now:                       time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Submit(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RequestResponse{}, err
	}

	created, err := s.createRequest(ctx, req.EmployeeID, req.Date, req.StartTime, req.EndTime, req.Reason)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	return mapRequestToResponse(created), nil
}

// SubmitForTeam implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) SubmitForTeam(ctx context.Context, req overtime.SubmitTeamOvertimeRequest) ([]overtime.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if len(req.TeamMemberIDs) == 0 {
		return nil, overtime.ErrEmptyTeam
	}

	reason := req.Reason + " (team overtime)"

	responses := make([]overtime.RequestResponse, 0, len(req.TeamMemberIDs))
	err := s.runTx(ctx, func(ctx context.Context) error {
		for _, memberID := range req.TeamMemberIDs {
			created, err := s.createRequest(ctx, memberID, req.Date, req.StartTime, req.EndTime, reason)
			if err != nil {
				return fmt.Errorf("failed to create overtime request for member %s: %w", memberID, err)
			}
			responses = append(responses, mapRequestToResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

func (s *OvertimeServiceImpl) createRequest(ctx context.Context, employeeID, date, startTime, endTime, reason string) (overtime.Request, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, employee.ErrEmployeeNotFound
		}
		return overtime.Request{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day, _ := time.Parse("2006-01-02", date)
	start, _ := time.Parse(time.RFC3339, startTime)
	end, _ := time.Parse(time.RFC3339, endTime)

	if !end.After(start) {
		return overtime.Request{}, overtime.ErrInvalidTimeRange
	}

	request := overtime.Request{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		Date:       day,
		StartTime:  start,
		EndTime:    end,
		Reason:     reason,
		Status:     overtime.StatusPending,
	}

	created, err := s.OvertimeRequestRepository.Create(ctx, request)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	s.notify(sse.Change{EntityType: "overtime_request", Action: sse.ActionCreated, ID: created.ID})

	return created, nil
}

// Approve implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, req overtime.ApproveOvertimeRequest) (overtime.RequestResponse, error) {
	request, err := s.OvertimeRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.RequestResponse{}, overtime.ErrRequestNotFound
		}
		return overtime.RequestResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	if request.Status != overtime.StatusPending {
		return overtime.RequestResponse{}, overtime.ErrAlreadyProcessed
	}

	actionedAt := s.now()
	request.Status = overtime.StatusApproved
	request.ApproverID = &req.ApproverID
	request.ActionedDate = &actionedAt

	if err := s.OvertimeRequestRepository.Update(ctx, request); err != nil {
		return overtime.RequestResponse{}, fmt.Errorf("failed to update overtime request: %w", err)
	}

	s.notify(sse.Change{EntityType: "overtime_request", Action: sse.ActionUpdated, ID: request.ID})

	return mapRequestToResponse(request), nil
}

// Reject implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.RejectOvertimeRequest) (overtime.RequestResponse, error) {
	if req.Reason == "" {
		return overtime.RequestResponse{}, overtime.ErrReasonRequired
	}

	request, err := s.OvertimeRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.RequestResponse{}, overtime.ErrRequestNotFound
		}
		return overtime.RequestResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	if request.Status != overtime.StatusPending {
		return overtime.RequestResponse{}, overtime.ErrAlreadyProcessed
	}

	actionedAt := s.now()
	request.Status = overtime.StatusRejected
	request.RejectionReason = &req.Reason
	request.ApproverID = &req.ApproverID
	request.ActionedDate = &actionedAt

	if err := s.OvertimeRequestRepository.Update(ctx, request); err != nil {
		return overtime.RequestResponse{}, fmt.Errorf("failed to update overtime request: %w", err)
	}

	s.notify(sse.Change{EntityType: "overtime_request", Action: sse.ActionUpdated, ID: request.ID})

	return mapRequestToResponse(request), nil
}

// ListByEmployee implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.RequestResponse, error) {
	requests, err := s.OvertimeRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	responses := make([]overtime.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	return responses, nil
}

func (s *OvertimeServiceImpl) notify(change sse.Change) {
	if s.hub != nil {
		s.hub.Publish(change)
	}
}

func mapRequestToResponse(request overtime.Request) overtime.RequestResponse {
	var actionedDate *string
	if request.ActionedDate != nil {
		formatted := request.ActionedDate.Format(time.RFC3339)
		actionedDate = &formatted
	}

	return overtime.RequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		Date:            request.Date.Format("2006-01-02"),
		StartTime:       request.StartTime.Format(time.RFC3339),
		EndTime:         request.EndTime.Format(time.RFC3339),
		Reason:          request.Reason,
		Status:          string(request.Status),
		RejectionReason: request.RejectionReason,
		ApproverID:      request.ApproverID,
		ActionedDate:    actionedDate,
	}
}
