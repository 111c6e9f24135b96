package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens a new shift. It fails with *OpenShiftError while the
	// employee still has an open shift anywhere in the ledger.
	ClockIn(ctx context.Context, req ClockInRequest) (RecordResponse, error)

	// ClockOut closes the employee's open shift. Leaving more than the
	// tolerance before the branch's scheduled end of day requires a
	// reason and marks the record leave_early.
	ClockOut(ctx context.Context, req ClockOutRequest) (RecordResponse, error)

	// MarkAbsent records a closed absence for a day without a shift.
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (RecordResponse, error)

	// CorrectRecord edits clock timestamps on an existing record.
	CorrectRecord(ctx context.Context, req CorrectRecordRequest) (RecordResponse, error)

	// CurrentEarnings computes the wage for a record; for an open shift
	// the current time is used as the provisional shift end.
	CurrentEarnings(ctx context.Context, recordID string) (EarningsResponse, error)

	ListRecords(ctx context.Context, filter ListRecordsFilter) ([]RecordResponse, error)
}
