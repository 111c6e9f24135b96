package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string
	FullName           string
	BranchID           string
	HourlyRate         decimal.Decimal
	RateType           RateType
	AnnualLeaveBalance int
	SickLeaveBalance   int
	LeaveCycleStart    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type RateType string

const (
	RateTypeHourly   RateType = "hourly"
	RateTypeSalaried RateType = "salaried"
)
