package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/auth"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.TerminalRepository
	jwtService jwt.Service
}

func NewAuthService(terminalRepo auth.TerminalRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		TerminalRepository: terminalRepo,
		jwtService:         jwtService,
	}
}

// TerminalLogin implements auth.AuthService.
func (s *AuthServiceImpl) TerminalLogin(ctx context.Context, req auth.TerminalLoginRequest) (auth.TerminalLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TerminalLoginResponse{}, err
	}

	terminal, err := s.TerminalRepository.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, auth.ErrTerminalNotFound) {
			return auth.TerminalLoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TerminalLoginResponse{}, fmt.Errorf("failed to get terminal: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(terminal.SecretHash), []byte(req.Secret)); err != nil {
		return auth.TerminalLoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(terminal.ID, terminal.BranchID)
	if err != nil {
		return auth.TerminalLoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TerminalLoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		BranchID:    terminal.BranchID,
	}, nil
}
