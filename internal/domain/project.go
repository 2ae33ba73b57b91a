package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Description string
	Category    ProjectCategory
	Status      ProjectStage
	ObjectiveID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants enforced before any write.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if !ValidCategories[string(p.Category)] {
		return fmt.Errorf("unknown project category %q", p.Category)
	}
	if _, err := ParseProjectStage(string(p.Status)); err != nil {
		return err
	}
	return nil
}

// NextStage returns the stage one step ahead in the fixed order.
// The second return is false when the project is already at the last stage.
func (p *Project) NextStage() (ProjectStage, bool) {
	for i, st := range StageOrder {
		if st == p.Status && i+1 < len(StageOrder) {
			return StageOrder[i+1], true
		}
	}
	return p.Status, false
}

// PrevStage returns the stage one step back in the fixed order.
// The second return is false when the project is already at the first stage.
func (p *Project) PrevStage() (ProjectStage, bool) {
	for i, st := range StageOrder {
		if st == p.Status && i > 0 {
			return StageOrder[i-1], true
		}
	}
	return p.Status, false
}
