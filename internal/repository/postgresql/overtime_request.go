package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/overtime"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/database"
)

type overtimeRequestRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.OvertimeRequestRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

// Create implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, date, start_time, end_time, reason,
			status, rejection_reason, approver_id, actioned_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.Reason,
		req.Status,
		req.RejectionReason,
		req.ApproverID,
		req.ActionedDate,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, reason,
			   status, rejection_reason, approver_id, actioned_date,
			   created_at, updated_at
		FROM overtime_requests
		WHERE id = $1
	`

	var req overtime.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.Reason,
		&req.Status, &req.RejectionReason, &req.ApproverID, &req.ActionedDate,
		&req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, overtime.ErrRequestNotFound
		}
		return overtime.Request{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

// Update implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) Update(ctx context.Context, req overtime.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $2,
			rejection_reason = $3,
			approver_id = $4,
			actioned_date = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.Status,
		req.RejectionReason,
		req.ApproverID,
		req.ActionedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}

	return nil
}

// ListByEmployee implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, reason,
			   status, rejection_reason, approver_id, actioned_date,
			   created_at, updated_at
		FROM overtime_requests
		WHERE employee_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		var req overtime.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.Reason,
			&req.Status, &req.RejectionReason, &req.ApproverID, &req.ActionedDate,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}

	return requests, nil
}
