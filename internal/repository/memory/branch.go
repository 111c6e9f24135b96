package memory

import (
	"context"
	"sync"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/branch"
)

type BranchRepository struct {
	mu       sync.RWMutex
	branches map[string]branch.Branch
}

func NewBranchRepository() *BranchRepository {
	return &BranchRepository{
		branches: make(map[string]branch.Branch),
	}
}

func (r *BranchRepository) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.branches[b.ID] = b
	return b, nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.branches[id]
	if !ok {
		return branch.Branch{}, branch.ErrBranchNotFound
	}
	return b, nil
}

func (r *BranchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]branch.Branch, 0, len(r.branches))
	for _, b := range r.branches {
		out = append(out, b)
	}
	return out, nil
}
