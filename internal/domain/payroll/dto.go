package payroll

import (
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateWageRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftStart string `json:"shift_start"` // RFC3339
	ShiftEnd   string `json:"shift_end"`   // RFC3339, empty for an open shift
}

func (r *CalculateWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start is required",
		})
	} else if _, valid := validator.IsValidDateTime(r.ShiftStart); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be an RFC3339 timestamp",
		})
	}

	if !validator.IsEmpty(r.ShiftEnd) {
		if _, valid := validator.IsValidDateTime(r.ShiftEnd); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WageResponse struct {
	EmployeeID       string          `json:"employee_id"`
	ShiftStart       string          `json:"shift_start"`
	ShiftEnd         string          `json:"shift_end"`
	GrossWage        decimal.Decimal `json:"gross_wage"`
	NormalHours      decimal.Decimal `json:"normal_hours"`
	TimeAndHalfHours decimal.Decimal `json:"time_and_half_hours"`
	DoubleTimeHours  decimal.Decimal `json:"double_time_hours"`
}

// ShiftSummary breaks one shift down into hours per pay tier.
type ShiftSummary struct {
	GrossWage        decimal.Decimal
	NormalHours      decimal.Decimal
	TimeAndHalfHours decimal.Decimal
	DoubleTimeHours  decimal.Decimal
}
