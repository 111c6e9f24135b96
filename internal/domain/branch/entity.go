package branch

import (
	"strings"
	"time"
)

type Branch struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	// DayStartHour is the scheduled start of a working day for every branch.
	DayStartHour = 8

	defaultDayEndHour = 16
	capeDayEndHour    = 17
)

// DayEndHour returns the hour at which normal working time ends for this
// branch. Cape-region branches run an hour longer than the rest.
func (b Branch) DayEndHour() int {
	if strings.Contains(b.Name, "Cape") {
		return capeDayEndHour
	}
	return defaultDayEndHour
}

// DayStart returns the scheduled start of the working day containing t.
func (b Branch) DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), DayStartHour, 0, 0, 0, t.Location())
}

// DayEnd returns the scheduled end of the working day containing t.
func (b Branch) DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), b.DayEndHour(), 0, 0, 0, t.Location())
}
