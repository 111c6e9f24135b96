package auth

import "context"

type TerminalRepository interface {
	Create(ctx context.Context, t Terminal) (Terminal, error)
	GetByCode(ctx context.Context, code string) (Terminal, error)
}
