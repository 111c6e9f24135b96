package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func holidayByName(t *testing.T, svc *CalendarService, year int, name string) time.Time {
	t.Helper()
	for _, h := range svc.GenerateForYear(year) {
		if h.Name == name {
			return h.Date
		}
	}
	t.Fatalf("holiday %q not found in %d", name, year)
	return time.Time{}
}

func TestGenerateForYearFixedSet(t *testing.T) {
	svc := NewCalendarService()

	holidays := svc.GenerateForYear(2023)

	expected := map[string]time.Time{
		"New Year's Day":        date(2023, time.January, 1),
		"Human Rights Day":      date(2023, time.March, 21),
		"Freedom Day":           date(2023, time.April, 27),
		"Workers' Day":          date(2023, time.May, 1),
		"Youth Day":             date(2023, time.June, 16),
		"National Women's Day":  date(2023, time.August, 9),
		"Heritage Day":          date(2023, time.September, 24),
		"Day of Reconciliation": date(2023, time.December, 16),
		"Christmas Day":         date(2023, time.December, 25),
		"Day of Goodwill":       date(2023, time.December, 26),
	}

	byName := make(map[string]time.Time, len(holidays))
	for _, h := range holidays {
		byName[h.Name] = h.Date
	}

	for name, want := range expected {
		got, ok := byName[name]
		require.True(t, ok, "missing %s", name)
		assert.True(t, want.Equal(got), "%s: want %s got %s", name, want, got)
	}
}

func TestGenerateForYearSorted(t *testing.T) {
	svc := NewCalendarService()

	for _, year := range []int{2022, 2024, 2026} {
		holidays := svc.GenerateForYear(year)
		for i := 1; i < len(holidays); i++ {
			assert.True(t, holidays[i-1].Date.Before(holidays[i].Date),
				"%d: %s not before %s", year, holidays[i-1].Name, holidays[i].Name)
		}
	}
}

func TestEasterDerivedHolidays(t *testing.T) {
	svc := NewCalendarService()

	// Easter 2026 falls on April 5.
	assert.True(t, date(2026, time.April, 3).Equal(holidayByName(t, svc, 2026, "Good Friday")))
	assert.True(t, date(2026, time.April, 6).Equal(holidayByName(t, svc, 2026, "Family Day")))

	// Easter 2025 falls on April 20.
	assert.True(t, date(2025, time.April, 18).Equal(holidayByName(t, svc, 2025, "Good Friday")))
	assert.True(t, date(2025, time.April, 21).Equal(holidayByName(t, svc, 2025, "Family Day")))

	// Easter 2022 falls on April 17.
	assert.True(t, date(2022, time.April, 15).Equal(holidayByName(t, svc, 2022, "Good Friday")))
	assert.True(t, date(2022, time.April, 18).Equal(holidayByName(t, svc, 2022, "Family Day")))
}

func TestSundayObservedOnMonday(t *testing.T) {
	svc := NewCalendarService()

	// Workers' Day 2022 falls on a Sunday; the Monday gains an observed entry.
	observed := holidayByName(t, svc, 2022, "Workers' Day (Observed)")
	assert.True(t, date(2022, time.May, 2).Equal(observed))

	// The original Sunday entry is kept.
	assert.True(t, svc.IsHoliday(date(2022, time.May, 1)))
	assert.True(t, svc.IsHoliday(date(2022, time.May, 2)))
}

func TestChristmasObservedShiftsPastGoodwill(t *testing.T) {
	svc := NewCalendarService()

	// Christmas 2022 falls on a Sunday, but Monday the 26th is the Day of
	// Goodwill, so the observed entry lands on Tuesday the 27th.
	observed := holidayByName(t, svc, 2022, "Christmas Day (Observed)")
	assert.True(t, date(2022, time.December, 27).Equal(observed))

	assert.True(t, svc.IsHoliday(date(2022, time.December, 25)))
	assert.True(t, svc.IsHoliday(date(2022, time.December, 26)))
	assert.True(t, svc.IsHoliday(date(2022, time.December, 27)))
}

func TestIsHolidayIgnoresTimeOfDay(t *testing.T) {
	svc := NewCalendarService()

	assert.True(t, svc.IsHoliday(time.Date(2026, time.June, 16, 14, 30, 0, 0, time.UTC)))
	assert.False(t, svc.IsHoliday(time.Date(2026, time.June, 17, 14, 30, 0, 0, time.UTC)))
}

func TestHolidayName(t *testing.T) {
	svc := NewCalendarService()

	name, ok := svc.HolidayName(date(2026, time.June, 16))
	require.True(t, ok)
	assert.Equal(t, "Youth Day", name)

	_, ok = svc.HolidayName(date(2026, time.June, 17))
	assert.False(t, ok)
}

func TestGenerateForYearCached(t *testing.T) {
	svc := NewCalendarService()

	first := svc.GenerateForYear(2026)
	second := svc.GenerateForYear(2026)

	assert.Equal(t, first, second)
}
