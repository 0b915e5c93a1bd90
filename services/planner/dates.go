package planner

import "time"

// monthStart truncates t to the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// endOfMonth returns the last calendar day of t's month.
func endOfMonth(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, -1)
}

// addMonths advances t by n calendar months, clamping the day so a Jan 31
// start lands on Feb 28/29 rather than skipping into March the way
// time.AddDate normalizes.
func addMonths(t time.Time, n int) time.Time {
	target := monthStart(t).AddDate(0, n, 0)
	day := t.Day()
	if last := endOfMonth(target).Day(); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, t.Location())
}
