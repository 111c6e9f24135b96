package holiday

import "time"

// PublicHoliday is one observed national holiday entry for a calendar year.
// A holiday that falls on a Sunday produces a second entry on the following
// working day with " (Observed)" appended to its name.
type PublicHoliday struct {
	Date time.Time
	Name string
}
