package domain

import (
	"fmt"
	"time"
)

type Objective struct {
	ID              string
	Title           string
	Description     string
	TargetMetric    string
	TargetValue     float64
	CurrentProgress float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the invariants enforced before any write: a non-empty
// title, a positive target, and non-negative progress.
func (o *Objective) Validate() error {
	if o.Title == "" {
		return fmt.Errorf("objective title is required")
	}
	if o.TargetValue <= 0 {
		return fmt.Errorf("objective target value must be positive, got %v", o.TargetValue)
	}
	if o.CurrentProgress < 0 {
		return fmt.Errorf("objective progress cannot be negative, got %v", o.CurrentProgress)
	}
	return nil
}

// Percent returns the unclamped completion percentage.
func (o *Objective) Percent() int {
	return PercentOf(o.CurrentProgress, o.TargetValue)
}

// Band returns the color band for the current completion percentage.
func (o *Objective) Band() ProgressBand {
	return BandFor(o.Percent())
}
