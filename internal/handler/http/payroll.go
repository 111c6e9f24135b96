package http

import (
	"encoding/json"
	"net/http"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/khanyisa-hr/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CalculateWage(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	wageService payroll.WageService
}

func NewPayrollHandler(wageService payroll.WageService) PayrollHandler {
	return &payrollHandlerImpl{
		wageService: wageService,
	}
}

// CalculateWage implements PayrollHandler.
func (h *payrollHandlerImpl) CalculateWage(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.wageService.CalculateForEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
