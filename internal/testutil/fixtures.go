package testutil

import (
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/google/uuid"
)

// Objective options
type ObjectiveOption func(*domain.Objective)

func WithTarget(metric string, value float64) ObjectiveOption {
	return func(o *domain.Objective) {
		o.TargetMetric = metric
		o.TargetValue = value
	}
}

func WithProgress(v float64) ObjectiveOption {
	return func(o *domain.Objective) {
		o.CurrentProgress = v
	}
}

func WithInactive() ObjectiveOption {
	return func(o *domain.Objective) {
		o.IsActive = false
	}
}

func NewTestObjective(title string, opts ...ObjectiveOption) *domain.Objective {
	now := time.Now().UTC()
	o := &domain.Objective{
		ID:          uuid.New().String(),
		Title:       title,
		TargetValue: 10,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Session options
type SessionOption func(*domain.Session)

func WithObjectiveID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ObjectiveID = &id
	}
}

func WithSessionNotes(notes string) SessionOption {
	return func(s *domain.Session) {
		s.Notes = notes
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.CreatedAt = t
	}
}

func NewTestSession(block domain.BlockType, minutes int, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:              uuid.New().String(),
		BlockType:       block,
		DurationMinutes: minutes,
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project options
type ProjectOption func(*domain.Project)

func WithStage(s domain.ProjectStage) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithCategory(c domain.ProjectCategory) ProjectOption {
	return func(p *domain.Project) {
		p.Category = c
	}
}

func WithProjectObjective(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ObjectiveID = &id
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  domain.CategoryOther,
		Status:    domain.StageIdea,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Book options
type BookOption func(*domain.Book)

func WithPages(total int) BookOption {
	return func(b *domain.Book) {
		b.TotalPages = &total
	}
}

func WithBookStatus(s domain.BookStatus) BookOption {
	return func(b *domain.Book) {
		b.Status = s
	}
}

func WithAuthor(a string) BookOption {
	return func(b *domain.Book) {
		b.Author = a
	}
}

func WithBookCreatedAt(t time.Time) BookOption {
	return func(b *domain.Book) {
		b.CreatedAt = t
		b.UpdatedAt = t
	}
}

func NewTestBook(title string, opts ...BookOption) *domain.Book {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := &domain.Book{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.BookReading,
		StartDate: &start,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Daily note options
type NoteOption func(*domain.DailyNote)

func WithMood(m domain.Mood) NoteOption {
	return func(n *domain.DailyNote) {
		n.Mood = &m
	}
}

func NewTestNote(date time.Time, content string, opts ...NoteOption) *domain.DailyNote {
	now := time.Now().UTC()
	n := &domain.DailyNote{
		ID:        uuid.New().String(),
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Weekly review options
type ReviewOption func(*domain.WeeklyReview)

// WithBlocksDone marks the given blocks done and recomputes validity.
func WithBlocksDone(blocks ...domain.BlockType) ReviewOption {
	return func(r *domain.WeeklyReview) {
		for _, b := range blocks {
			_ = r.SetBlockDone(b, true)
		}
	}
}

func NewTestReview(year, weekNumber int, opts ...ReviewOption) *domain.WeeklyReview {
	now := time.Now().UTC()
	r := &domain.WeeklyReview{
		ID:        uuid.New().String(),
		Year:      year,
		Week:      weekNumber,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
