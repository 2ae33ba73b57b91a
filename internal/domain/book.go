package domain

import (
	"fmt"
	"time"
)

type Book struct {
	ID          string
	Title       string
	Author      string
	TotalPages  *int
	CurrentPage int
	Status      BookStatus
	Rating      *int
	Notes       string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants enforced before any write.
func (b *Book) Validate() error {
	if b.Title == "" {
		return fmt.Errorf("book title is required")
	}
	if b.TotalPages != nil && *b.TotalPages <= 0 {
		return fmt.Errorf("book page count must be positive, got %d", *b.TotalPages)
	}
	if b.Rating != nil && (*b.Rating < 1 || *b.Rating > 5) {
		return fmt.Errorf("book rating must be between 1 and 5, got %d", *b.Rating)
	}
	return nil
}

// ApplyPageProgress moves the bookmark. When the page count is known and the
// bookmark reaches it, the book auto-completes and the end date is stamped.
func (b *Book) ApplyPageProgress(page int, today time.Time) {
	b.CurrentPage = page
	if b.TotalPages != nil && page >= *b.TotalPages {
		b.Status = BookCompleted
		d := dateOnly(today)
		b.EndDate = &d
	}
}

// Finish marks the book completed with an optional rating and notes.
func (b *Book) Finish(rating *int, notes string, today time.Time) {
	b.Status = BookCompleted
	b.Rating = rating
	if notes != "" {
		b.Notes = notes
	}
	d := dateOnly(today)
	b.EndDate = &d
}

// PercentRead returns the reading percentage when the total page count is
// known. The second return is false for books without one; those report raw
// page counts instead.
func (b *Book) PercentRead() (int, bool) {
	if b.TotalPages == nil {
		return 0, false
	}
	return PercentOf(float64(b.CurrentPage), float64(*b.TotalPages)), true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
