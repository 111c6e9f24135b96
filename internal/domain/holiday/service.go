package holiday

import "time"

// Calendar generates and answers questions about the national holiday set.
// Results are pure functions of the year, so implementations are free to
// cache per-year output for the process lifetime.
type Calendar interface {
	GenerateForYear(year int) []PublicHoliday
	IsHoliday(date time.Time) bool
	HolidayName(date time.Time) (string, bool)
}
