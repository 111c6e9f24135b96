package auth

import "context"

type AuthService interface {
	// TerminalLogin authenticates a clock-in terminal and issues an
	// access token carrying its branch.
	TerminalLogin(ctx context.Context, req TerminalLoginRequest) (TerminalLoginResponse, error)
}
