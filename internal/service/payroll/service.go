package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/branch"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// chunkSize bounds the approximation error when a shift crosses a
// multiplier boundary mid-shift (into overtime hours, or past midnight
// into a different day-of-week).
const chunkSize = 15 * time.Minute

var (
	multiplierNormal      = decimal.NewFromInt(1)
	multiplierTimeAndHalf = decimal.RequireFromString("1.5")
	multiplierDouble      = decimal.NewFromInt(2)
)

type WageServiceImpl struct {
	calendar holiday.Calendar
	employee.EmployeeRepository
	branch.BranchRepository
}

func NewWageService(calendar holiday.Calendar, employeeRepo employee.EmployeeRepository, branchRepo branch.BranchRepository) payroll.WageService {
	return &WageServiceImpl{
		calendar:           calendar,
		EmployeeRepository: employeeRepo,
		BranchRepository:   branchRepo,
	}
}

// CalculateWage implements payroll.WageService.
func (s *WageServiceImpl) CalculateWage(start, end time.Time, rate decimal.Decimal, rateType employee.RateType, br branch.Branch) decimal.Decimal {
	return s.SummarizeShift(start, end, rate, rateType, br).GrossWage
}

// SummarizeShift implements payroll.WageService.
//
// The shift is partitioned into fixed chunks aligned to its start; each
// chunk is paid at the multiplier in force at the chunk's start.
func (s *WageServiceImpl) SummarizeShift(start, end time.Time, rate decimal.Decimal, rateType employee.RateType, br branch.Branch) payroll.ShiftSummary {
	summary := payroll.ShiftSummary{
		GrossWage:        decimal.Zero,
		NormalHours:      decimal.Zero,
		TimeAndHalfHours: decimal.Zero,
		DoubleTimeHours:  decimal.Zero,
	}

	// Salaried staff are paid from salary payroll, not from shifts.
	if rateType == employee.RateTypeSalaried {
		return summary
	}
	if start.IsZero() || !end.After(start) {
		return summary
	}

	for t := start; t.Before(end); t = t.Add(chunkSize) {
		chunkEnd := t.Add(chunkSize)
		if chunkEnd.After(end) {
			chunkEnd = end
		}
		hours := decimal.NewFromFloat(chunkEnd.Sub(t).Hours())

		multiplier := s.multiplierAt(t, br)
		switch {
		case multiplier.Equal(multiplierDouble):
			summary.DoubleTimeHours = summary.DoubleTimeHours.Add(hours)
		case multiplier.Equal(multiplierTimeAndHalf):
			summary.TimeAndHalfHours = summary.TimeAndHalfHours.Add(hours)
		default:
			summary.NormalHours = summary.NormalHours.Add(hours)
		}

		summary.GrossWage = summary.GrossWage.Add(hours.Mul(rate).Mul(multiplier))
	}

	return summary
}

// multiplierAt selects the pay multiplier in force at instant t.
func (s *WageServiceImpl) multiplierAt(t time.Time, br branch.Branch) decimal.Decimal {
	switch {
	case s.calendar.IsHoliday(t):
		return multiplierDouble
	case t.Weekday() == time.Sunday:
		return multiplierDouble
	case t.Weekday() == time.Saturday:
		return multiplierTimeAndHalf
	case t.Hour() >= br.DayEndHour():
		return multiplierTimeAndHalf
	default:
		return multiplierNormal
	}
}

// CalculateForEmployee implements payroll.WageService.
func (s *WageServiceImpl) CalculateForEmployee(ctx context.Context, req payroll.CalculateWageRequest) (payroll.WageResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.WageResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.WageResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.WageResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	br, err := s.BranchRepository.GetByID(ctx, emp.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.WageResponse{}, branch.ErrBranchNotFound
		}
		return payroll.WageResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	start, _ := time.Parse(time.RFC3339, req.ShiftStart)
	end := time.Now()
	if req.ShiftEnd != "" {
		end, _ = time.Parse(time.RFC3339, req.ShiftEnd)
	}

	summary := s.SummarizeShift(start, end, emp.HourlyRate, emp.RateType, br)

	return payroll.WageResponse{
		EmployeeID:       emp.ID,
		ShiftStart:       start.Format(time.RFC3339),
		ShiftEnd:         end.Format(time.RFC3339),
		GrossWage:        summary.GrossWage,
		NormalHours:      summary.NormalHours,
		TimeAndHalfHours: summary.TimeAndHalfHours,
		DoubleTimeHours:  summary.DoubleTimeHours,
	}, nil
}
