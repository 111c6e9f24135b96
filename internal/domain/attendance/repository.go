package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// CreateOpenShift atomically creates rec as a new open shift,
	// failing with *OpenShiftError if any open shift already exists for
	// the employee. A read-then-write check is not an acceptable
	// implementation: the check and the insert must be one atomic step.
	CreateOpenShift(ctx context.Context, rec Record) (Record, error)

	// Create inserts an already-closed record (absences).
	Create(ctx context.Context, rec Record) (Record, error)

	// GetOpenShift returns the employee's open shift, or nil when the
	// employee has none. The lookup is global, not per-day.
	GetOpenShift(ctx context.Context, employeeID string) (*Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	Update(ctx context.Context, rec Record) error

	// ListByEmployee returns records whose date falls in [from, to].
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
