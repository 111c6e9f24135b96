package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CreateOpenShift implements attendance.AttendanceRepository. The insert
// and the open-shift check run as a single statement so two concurrent
// clock-ins for the same employee cannot both succeed.
func (r *attendanceRepositoryImpl) CreateOpenShift(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, branch_id, date, clock_in, clock_out,
			status, leave_reason, cached_hourly_rate
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_id = $2
			  AND clock_in IS NOT NULL
			  AND clock_out IS NULL
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.BranchID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.Status,
		rec.LeaveReason,
		rec.CachedHourlyRate,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			open, lookupErr := r.GetOpenShift(ctx, rec.EmployeeID)
			if lookupErr == nil && open != nil {
				return attendance.Record{}, &attendance.OpenShiftError{OpenRecordID: open.ID}
			}
			return attendance.Record{}, &attendance.OpenShiftError{}
		}
		return attendance.Record{}, fmt.Errorf("failed to create open shift: %w", err)
	}

	return rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, branch_id, date, clock_in, clock_out,
			status, leave_reason, cached_hourly_rate
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.BranchID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.Status,
		rec.LeaveReason,
		rec.CachedHourlyRate,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetOpenShift implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenShift(ctx context.Context, employeeID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, branch_id, date, clock_in, clock_out,
			   status, leave_reason, cached_hourly_rate, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND clock_in IS NOT NULL
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.Status, &rec.LeaveReason, &rec.CachedHourlyRate, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open shift: %w", err)
	}

	return &rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, branch_id, date, clock_in, clock_out,
			   status, leave_reason, cached_hourly_rate, created_at, updated_at
		FROM attendance_records
		WHERE id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.Status, &rec.LeaveReason, &rec.CachedHourlyRate, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET date = $2,
			clock_in = $3,
			clock_out = $4,
			status = $5,
			leave_reason = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.Status,
		rec.LeaveReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, branch_id, date, clock_in, clock_out,
			   status, leave_reason, cached_hourly_rate, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.Status, &rec.LeaveReason, &rec.CachedHourlyRate, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
