package calendar

import (
	"math"
	"time"
)

// Cell is one slot in a month grid. Leading blanks before the first weekday
// have Day 0 and an empty Date.
type Cell struct {
	Day      int
	Date     string
	IsToday  bool
	Activity *Day
}

// Blank reports whether the cell is a leading filler slot.
func (c Cell) Blank() bool { return c.Day == 0 }

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid produces the cell sequence for one month: leading blanks equal
// to the weekday index of the 1st (Sunday = 0), then one cell per day with
// its ISO date, today flag, and merged activity if any.
func MonthGrid(year int, month time.Month, today time.Time, activity ActivityMap) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	todayKey := today.Format(DateLayout)

	cells := make([]Cell, 0, int(first.Weekday())+DaysIn(year, month))
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= DaysIn(year, month); day++ {
		key := dayKey(year, month, day)
		cells = append(cells, Cell{
			Day:      day,
			Date:     key,
			IsToday:  key == todayKey,
			Activity: activity[key],
		})
	}
	return cells
}

// MonthStats summarizes activity density for one month.
type MonthStats struct {
	ActiveDays int
	TotalDays  int
	PassedDays int
	Percentage int
}

// Stats counts the month's active days against the days elapsed so far.
// For the current month PassedDays is today's day-of-month; for any other
// month it is the full day count. Percentage guards division by zero.
func Stats(activity ActivityMap, year int, month time.Month, today time.Time) MonthStats {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")

	active := 0
	for key := range activity {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			active++
		}
	}

	total := DaysIn(year, month)
	passed := total
	if year == today.Year() && month == today.Month() {
		passed = today.Day()
	}

	pct := 0
	if passed > 0 {
		pct = int(math.Round(float64(active) / float64(passed) * 100))
	}

	return MonthStats{
		ActiveDays: active,
		TotalDays:  total,
		PassedDays: passed,
		Percentage: pct,
	}
}
