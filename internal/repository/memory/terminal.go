package memory

import (
	"context"
	"sync"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/auth"
)

type TerminalRepository struct {
	mu        sync.RWMutex
	terminals map[string]auth.Terminal // keyed by code
}

func NewTerminalRepository() *TerminalRepository {
	return &TerminalRepository{
		terminals: make(map[string]auth.Terminal),
	}
}

func (r *TerminalRepository) Create(ctx context.Context, t auth.Terminal) (auth.Terminal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.terminals[t.Code] = t
	return t, nil
}

func (r *TerminalRepository) GetByCode(ctx context.Context, code string) (auth.Terminal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.terminals[code]
	if !ok {
		return auth.Terminal{}, auth.ErrTerminalNotFound
	}
	return t, nil
}
