// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// AddMonths advances t by n calendar months, clamping to the last day of
// the target month (Jan 31 + 1 month = Feb 28/29, not Mar 2 or 3).
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return BeginningOfDay(t).AddDate(0, 0, -offset)
}

// EndOfWeek returns the last instant of Sunday of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// WithinInterval reports whether d falls inside [start, end], inclusive at
// both ends.
func WithinInterval(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
