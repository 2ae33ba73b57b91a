// Package week implements the week-numbering and weekly-review aggregation
// rules. Week numbers are the join key between review records and the
// calendar, so the Thursday-anchoring rule here must stay bit-for-bit
// stable.
package week

import "time"

// YearWeek returns the (year, week number) pair for a date.
//
// The date is shifted to the Thursday of its Monday-start week (Sunday
// counts as day 7), then whole weeks are counted from that year's January 1,
// rounding up. Late-December dates can roll into week 1 of the following
// year; the returned year is the anchored Thursday's year.
func YearWeek(t time.Time) (int, int) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	d = d.AddDate(0, 0, 4-dayNum)

	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(yearStart).Hours()/24) + 1
	return d.Year(), (days + 6) / 7
}

// Number returns only the week number for a date.
func Number(t time.Time) int {
	_, w := YearWeek(t)
	return w
}
