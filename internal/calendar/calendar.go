// Package calendar holds the pure date arithmetic behind the month grid.
// Months are zero-based (0 = January) throughout, weekdays Sunday-based.
package calendar

import (
	"time"

	"football-calendar-service/internal/domain/match"
)

// now is swapped in tests that pin the clock.
var now = time.Now

// Cell pairs a day number with the matches scheduled on it.
type Cell struct {
	Day     int           `json:"day"`
	Matches []match.Match `json:"matches"`
}

// DaysInMonth returns the number of days in the zero-based month, following
// the Gregorian leap rule.
func DaysInMonth(year, month int) int {
	// Day zero of the following month normalizes to the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month, 0 = Sunday.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsToday reports whether the given date components match the current date.
// It consults the clock on every call; callers must not cache the answer
// across a day boundary.
func IsToday(day, month, year int) bool {
	return isToday(day, month, year, now())
}

func isToday(day, month, year int, at time.Time) bool {
	return day == at.Day() && month == int(at.Month())-1 && year == at.Year()
}

// GroupByDay buckets matches by day of month, preserving the order the
// normalizer produced within each day.
func GroupByDay(matches []match.Match) map[int][]match.Match {
	grouped := make(map[int][]match.Match)
	for _, m := range matches {
		grouped[m.Day] = append(grouped[m.Day], m)
	}
	return grouped
}

// Grid lays the month's matches out as one cell per day.
func Grid(year, month int, matches []match.Match) []Cell {
	grouped := GroupByDay(matches)
	days := DaysInMonth(year, month)
	cells := make([]Cell, 0, days)
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day, Matches: grouped[day]})
	}
	return cells
}
