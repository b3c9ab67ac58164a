package domain

import "time"

// Calendar boundary helpers. All timestamps in a run are assumed to share one
// naive calendar; no timezone conversion happens here.

// StartOfDay returns t truncated to midnight of the same calendar date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight on the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	// time.Weekday counts from Sunday; shift so Monday = 0.
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// CrossedDayBoundary reports whether t1 and t2 fall on different calendar days.
func CrossedDayBoundary(t1, t2 time.Time) bool {
	return !StartOfDay(t1).Equal(StartOfDay(t2))
}

// CrossedWeekBoundary reports whether t1 and t2 fall in different
// Monday-anchored weeks.
func CrossedWeekBoundary(t1, t2 time.Time) bool {
	return !StartOfWeek(t1).Equal(StartOfWeek(t2))
}
