// Package calendar derives per-day and per-month activity views from
// already-fetched daily notes and work sessions.
package calendar

import (
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
)

// DateLayout is the ISO date string used as the activity map key.
const DateLayout = "2006-01-02"

// Day is the merged activity for one calendar date.
type Day struct {
	HasNote bool
	Mood    *domain.Mood
	Blocks  []domain.BlockType
}

// hasBlock reports whether the day already records the given block type.
func (d *Day) hasBlock(b domain.BlockType) bool {
	for _, existing := range d.Blocks {
		if existing == b {
			return true
		}
	}
	return false
}

// ActivityMap maps ISO date strings to merged day activity.
type ActivityMap map[string]*Day

// BuildActivity merges notes and sessions into a date-keyed activity map.
// Notes seed their date with hasNote and mood; sessions contribute their
// block type to the creation date with set semantics, so a date lists each
// block at most once no matter how many sessions of that type it saw.
func BuildActivity(notes []*domain.DailyNote, sessions []*domain.Session) ActivityMap {
	days := make(ActivityMap)

	for _, n := range notes {
		days[n.Date.Format(DateLayout)] = &Day{HasNote: true, Mood: n.Mood}
	}

	for _, s := range sessions {
		key := s.CreatedAt.Format(DateLayout)
		d, ok := days[key]
		if !ok {
			d = &Day{}
			days[key] = d
		}
		if !d.hasBlock(s.BlockType) {
			d.Blocks = append(d.Blocks, s.BlockType)
		}
	}

	return days
}

// Intensity classifies a day's activity into display tiers 0 (none) through
// 4 (highest). Three blocks, or a note with mood great, reach the top tier;
// a note with no sessions lands in the lowest active tier.
func Intensity(d *Day) int {
	if d == nil {
		return 0
	}
	blocks := len(d.Blocks)
	highEngagement := d.HasNote && d.Mood != nil && *d.Mood == domain.MoodGreat
	switch {
	case blocks >= 3 || highEngagement:
		return 4
	case blocks >= 2:
		return 3
	case blocks >= 1:
		return 2
	case d.HasNote:
		return 1
	default:
		return 0
	}
}

// dayKey formats a year/month/day triple as an activity map key.
func dayKey(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}
