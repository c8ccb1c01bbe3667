// Package dates computes the canonical report windows. All values are
// calendar days pinned to midnight UTC; no timezone conversion happens
// anywhere in the engine.
package dates

import "time"

// Resolve returns the effective report window. Explicit bounds are used
// verbatim; a missing bound falls back to the matching edge of the current
// month. An inverted range is not an error: downstream builders tolerate
// empty windows.
func Resolve(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	monthStart, monthEnd := MonthRange(now)

	from := monthStart
	if start != nil {
		from = Day(*start)
	}
	to := monthEnd
	if end != nil {
		to = Day(*end)
	}

	return from, to
}

// MonthRange returns the first and last calendar day of now's month.
func MonthRange(now time.Time) (time.Time, time.Time) {
	d := Day(now)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// CurrentWeek returns the Monday-start week containing now; end is Monday+6.
func CurrentWeek(now time.Time) (time.Time, time.Time) {
	return WeekOf(now)
}

// WeekOf returns the Monday-start week containing d.
func WeekOf(d time.Time) (time.Time, time.Time) {
	day := Day(d)
	offset := int(day.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the week that started six days earlier
	}
	monday := day.AddDate(0, 0, 1-offset)
	return monday, monday.AddDate(0, 0, 6)
}

// LastNDays returns the inclusive window [now-n, now].
func LastNDays(now time.Time, n int) (time.Time, time.Time) {
	d := Day(now)
	return d.AddDate(0, 0, -n), d
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
