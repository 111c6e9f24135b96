package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.Mutex
	requests map[string]leave.Request
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{
		requests: make(map[string]leave.Request),
	}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[req.ID] = req
	return req, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; !ok {
		return leave.ErrRequestNotFound
	}
	r.requests[req.ID] = req
	return nil
}

func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.Request
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}
