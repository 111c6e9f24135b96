package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/employee"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, branch_id, hourly_rate, rate_type,
			annual_leave_balance, sick_leave_balance, leave_cycle_start
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.FullName,
		emp.BranchID,
		emp.HourlyRate,
		emp.RateType,
		emp.AnnualLeaveBalance,
		emp.SickLeaveBalance,
		emp.LeaveCycleStart,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, branch_id, hourly_rate, rate_type,
			   annual_leave_balance, sick_leave_balance, leave_cycle_start,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.BranchID, &emp.HourlyRate, &emp.RateType,
		&emp.AnnualLeaveBalance, &emp.SickLeaveBalance, &emp.LeaveCycleStart,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2,
			branch_id = $3,
			hourly_rate = $4,
			rate_type = $5,
			annual_leave_balance = $6,
			sick_leave_balance = $7,
			leave_cycle_start = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.FullName,
		emp.BranchID,
		emp.HourlyRate,
		emp.RateType,
		emp.AnnualLeaveBalance,
		emp.SickLeaveBalance,
		emp.LeaveCycleStart,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListByBranch implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByBranch(ctx context.Context, branchID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, branch_id, hourly_rate, rate_type,
			   annual_leave_balance, sick_leave_balance, leave_cycle_start,
			   created_at, updated_at
		FROM employees
		WHERE branch_id = $1
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.BranchID, &emp.HourlyRate, &emp.RateType,
			&emp.AnnualLeaveBalance, &emp.SickLeaveBalance, &emp.LeaveCycleStart,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
