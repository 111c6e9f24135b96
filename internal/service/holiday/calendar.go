package holiday

import (
	"sort"
	"sync"
	"time"

	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/holiday"
)

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// The ten fixed-date national holidays. Good Friday and Family Day are
// derived from Easter Sunday and added per year.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day"},
	{time.March, 21, "Human Rights Day"},
	{time.April, 27, "Freedom Day"},
	{time.May, 1, "Workers' Day"},
	{time.June, 16, "Youth Day"},
	{time.August, 9, "National Women's Day"},
	{time.September, 24, "Heritage Day"},
	{time.December, 16, "Day of Reconciliation"},
	{time.December, 25, "Christmas Day"},
	{time.December, 26, "Day of Goodwill"},
}

type CalendarService struct {
	mu    sync.RWMutex
	years map[int][]holiday.PublicHoliday
}

func NewCalendarService() *CalendarService {
	return &CalendarService{
		years: make(map[int][]holiday.PublicHoliday),
	}
}

// GenerateForYear returns the observed holiday set for a year, sorted by
// date. Holidays that land on a Sunday gain an extra "(Observed)" entry on
// the following Monday; if that Monday is itself a holiday, the observed
// entry moves one further day to the Tuesday.
func (c *CalendarService) GenerateForYear(year int) []holiday.PublicHoliday {
	c.mu.RLock()
	cached, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	generated := generate(year)

	c.mu.Lock()
	c.years[year] = generated
	c.mu.Unlock()

	return generated
}

// IsHoliday reports whether date (ignoring its time-of-day) is in the
// holiday set of its year.
func (c *CalendarService) IsHoliday(date time.Time) bool {
	_, ok := c.HolidayName(date)
	return ok
}

// HolidayName returns the holiday name for a date, if the date is one.
func (c *CalendarService) HolidayName(date time.Time) (string, bool) {
	for _, h := range c.GenerateForYear(date.Year()) {
		if h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
			return h.Name, true
		}
	}
	return "", false
}

func generate(year int) []holiday.PublicHoliday {
	base := make([]holiday.PublicHoliday, 0, len(fixedHolidays)+4)
	for _, f := range fixedHolidays {
		base = append(base, holiday.PublicHoliday{
			Date: time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
			Name: f.name,
		})
	}

	easter := easterSunday(year)
	base = append(base,
		holiday.PublicHoliday{Date: easter.AddDate(0, 0, -2), Name: "Good Friday"},
		holiday.PublicHoliday{Date: easter.AddDate(0, 0, 1), Name: "Family Day"},
	)

	sort.Slice(base, func(i, j int) bool { return base[i].Date.Before(base[j].Date) })

	taken := make(map[string]struct{}, len(base))
	for _, h := range base {
		taken[dateKey(h.Date)] = struct{}{}
	}

	all := base
	for _, h := range base {
		if h.Date.Weekday() != time.Sunday {
			continue
		}
		observed := h.Date.AddDate(0, 0, 1)
		if _, exists := taken[dateKey(observed)]; exists {
			// Monday already holds a holiday; shift one more day.
			observed = h.Date.AddDate(0, 0, 2)
			if _, exists := taken[dateKey(observed)]; exists {
				continue
			}
		}
		taken[dateKey(observed)] = struct{}{}
		all = append(all, holiday.PublicHoliday{
			Date: observed,
			Name: h.Name + " (Observed)",
		})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return all
}

// easterSunday computes Easter Sunday for a year using the anonymous
// Gregorian computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
