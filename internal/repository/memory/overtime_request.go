package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/overtime"
)

type OvertimeRequestRepository struct {
	mu       sync.Mutex
	requests map[string]overtime.Request
}

func NewOvertimeRequestRepository() *OvertimeRequestRepository {
	return &OvertimeRequestRepository{
		requests: make(map[string]overtime.Request),
	}
}

func (r *OvertimeRequestRepository) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[req.ID] = req
	return req, nil
}

func (r *OvertimeRequestRepository) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return overtime.Request{}, overtime.ErrRequestNotFound
	}
	return req, nil
}

func (r *OvertimeRequestRepository) Update(ctx context.Context, req overtime.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; !ok {
		return overtime.ErrRequestNotFound
	}
	r.requests[req.ID] = req
	return nil
}

func (r *OvertimeRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []overtime.Request
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
