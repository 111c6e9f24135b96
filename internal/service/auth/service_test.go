package auth

import (
	"context"
	"testing"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/auth"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/khanyisa-hr/workforce-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func newAuthFixture(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	terminalRepo := memory.NewTerminalRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("door-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = terminalRepo.Create(context.Background(), auth.Terminal{
		ID:         "t1",
		BranchID:   "b1",
		Code:       "JHB-FRONT-01",
		SecretHash: string(hash),
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(terminalRepo, jwtService), jwtService
}

func TestTerminalLogin(t *testing.T) {
	svc, jwtService := newAuthFixture(t)

	resp, err := svc.TerminalLogin(context.Background(), auth.TerminalLoginRequest{
		Code:   "JHB-FRONT-01",
		Secret: "door-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "b1", resp.BranchID)
	assert.NotZero(t, resp.ExpiresAt)

	terminalID, err := jwtService.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "t1", terminalID)
}

func TestTerminalLoginWrongSecret(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.TerminalLogin(context.Background(), auth.TerminalLoginRequest{
		Code:   "JHB-FRONT-01",
		Secret: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestTerminalLoginUnknownCode(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.TerminalLogin(context.Background(), auth.TerminalLoginRequest{
		Code:   "PTA-BACK-09",
		Secret: "door-secret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestTerminalLoginValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.TerminalLogin(context.Background(), auth.TerminalLoginRequest{})
	assert.Error(t, err)
}
