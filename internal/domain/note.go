package domain

import (
	"fmt"
	"time"
)

// DailyNote is the single free-text note for one calendar date.
// Date carries no time-of-day component.
type DailyNote struct {
	ID        string
	Date      time.Time
	Content   string
	Mood      *Mood
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants enforced before any write.
func (n *DailyNote) Validate() error {
	if n.Content == "" {
		return fmt.Errorf("note content is required")
	}
	if n.Mood != nil && !ValidMoods[string(*n.Mood)] {
		return fmt.Errorf("unknown mood %q", *n.Mood)
	}
	return nil
}
