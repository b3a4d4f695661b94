// Package aggregate derives read-only summaries from a snapshot of expenses and
// budgets. Every function here is pure: the same snapshot and clock reading
// always give the same result and inputs are never modified.
package aggregate

import "time"

// Window is an inclusive time range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within [Start, End].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// MonthWindow returns the calendar month containing now, in now's location.
func MonthWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, now.Location())
	return Window{Start: start, End: end}
}

// TrailingDays returns the window covering the last n calendar days, today
// included. n < 1 is treated as 1.
func TrailingDays(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	today := startOfDay(now)
	return Window{
		Start: today.AddDate(0, 0, -(n - 1)),
		End:   time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 999999999, now.Location()),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
