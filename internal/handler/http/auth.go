package http

import (
	"encoding/json"
	"net/http"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/auth"
	"github.com/khanyisa-hr/workforce-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	TerminalLogin(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// TerminalLogin implements AuthHandler.
func (h *authHandlerImpl) TerminalLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.TerminalLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.TerminalLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
