package payroll

import (
	"context"
	"time"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/branch"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type WageService interface {
	// CalculateWage computes the gross wage for one shift. For an open
	// shift callers pass the current time as end, which yields a live,
	// monotonically growing estimate.
	CalculateWage(start, end time.Time, rate decimal.Decimal, rateType employee.RateType, br branch.Branch) decimal.Decimal

	// SummarizeShift computes the gross wage together with the hours
	// worked in each pay tier.
	SummarizeShift(start, end time.Time, rate decimal.Decimal, rateType employee.RateType, br branch.Branch) ShiftSummary

	// CalculateForEmployee resolves the employee and branch, then
	// computes the wage for the requested window.
	CalculateForEmployee(ctx context.Context, req CalculateWageRequest) (WageResponse, error)
}
