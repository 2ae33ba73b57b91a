package domain

import (
	"fmt"
	"time"
)

// WeeklyReview is the single reflection record for one (year, week) pair.
// The five done flags mirror AllBlocks in order; IsValidWeek is recomputed
// on every write as done count >= 3.
type WeeklyReview struct {
	ID           string
	Year         int
	Week         int
	StudyDone    bool
	ProjectDone  bool
	DocsDone     bool
	OutreachDone bool
	ReviewDone   bool

	IsValidWeek bool

	WhatWorked          string
	Blockers            string
	NextWeekAdjustments string
	FreeReflection      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockDone reports whether the given block's flag is set.
func (r *WeeklyReview) BlockDone(b BlockType) bool {
	switch b {
	case BlockStudy:
		return r.StudyDone
	case BlockProject:
		return r.ProjectDone
	case BlockDocs:
		return r.DocsDone
	case BlockOutreach:
		return r.OutreachDone
	case BlockReview:
		return r.ReviewDone
	}
	return false
}

// SetBlockDone sets the flag for the given block and recomputes IsValidWeek.
func (r *WeeklyReview) SetBlockDone(b BlockType, done bool) error {
	switch b {
	case BlockStudy:
		r.StudyDone = done
	case BlockProject:
		r.ProjectDone = done
	case BlockDocs:
		r.DocsDone = done
	case BlockOutreach:
		r.OutreachDone = done
	case BlockReview:
		r.ReviewDone = done
	default:
		return fmt.Errorf("unknown block type %q", b)
	}
	r.Recalculate()
	return nil
}

// DoneCount returns how many of the five block flags are set.
func (r *WeeklyReview) DoneCount() int {
	count := 0
	for _, b := range AllBlocks {
		if r.BlockDone(b) {
			count++
		}
	}
	return count
}

// Recalculate refreshes the stored IsValidWeek flag from the done count.
func (r *WeeklyReview) Recalculate() {
	r.IsValidWeek = r.DoneCount() >= 3
}
