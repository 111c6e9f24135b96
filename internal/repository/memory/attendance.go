package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/attendance"
)

// AttendanceRepository is an in-memory implementation used by tests and
// local development. CreateOpenShift checks and inserts under a single
// lock so the one-open-shift-per-employee rule holds even under
// concurrent callers.
type AttendanceRepository struct {
	mu      sync.Mutex
	records map[string]attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Record),
	}
}

func (r *AttendanceRepository) CreateOpenShift(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == rec.EmployeeID && existing.ClockIn != nil && existing.ClockOut == nil {
			return attendance.Record{}, &attendance.OpenShiftError{OpenRecordID: existing.ID}
		}
	}

	r.records[rec.ID] = rec
	return rec, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[rec.ID] = rec
	return rec, nil
}

func (r *AttendanceRepository) GetOpenShift(ctx context.Context, employeeID string) (*attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.ClockIn != nil && rec.ClockOut == nil {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
