package auth

import (
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/validator"
)

type TerminalLoginRequest struct {
	Code   string `json:"code"`
	Secret string `json:"secret"`
}

func (r *TerminalLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.Secret) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret",
			Message: "secret is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TerminalLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	BranchID    string `json:"branch_id"`
}
