package till

import (
	"fmt"
	"time"
)

// DayFormat is the format used to represent days as strings, and therefore
// as storage key suffixes.
const DayFormat = "2006-01-02"

// clockFormat is how record and cart timestamps are persisted.
const clockFormat = "2006-01-02 15:04:05"

// now is the till's clock. Overridable in tests.
var now = time.Now

// Day represents a calendar day, the granularity at which the till scopes
// its storage.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day for the given year, month and day.
func NewDay(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a canonical representation of the day (midnight UTC).
func (d Day) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Today returns the current day in local time.
func Today() Day { return NewDay(now().Date()) }

// TodayUTC returns the current day on the UTC calendar. Near local midnight
// it can differ from Today; see MigrateLegacyKeys.
func TodayUTC() Day { return NewDay(now().UTC().Date()) }

// String formats the day in its standard format.
func (d Day) String() string { return d.time().Format(DayFormat) }

// ParseDay parses a Day from its standard format.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q want format %q: %w", s, DayFormat, err)
	}
	return NewDay(t.Date()), nil
}

// OrdersKey derives the storage key holding the day's committed checkouts.
func OrdersKey(d Day) string { return "orders_" + d.String() }

// CartKey derives the storage key holding the day's in-progress cart.
func CartKey(d Day) string { return "cart_" + d.String() }

// parseClock parses a persisted timestamp. It accepts the till's own format
// and RFC3339 for good measure.
func parseClock(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation(clockFormat, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
