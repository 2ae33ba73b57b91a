package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// SessionWithObjective is a joined view of a session with its linked
// objective's title, used by session listings.
type SessionWithObjective struct {
	Session        domain.Session
	ObjectiveTitle *string
}

// ProjectWithObjective is a joined view of a project with its linked
// objective's title, used by project listings.
type ProjectWithObjective struct {
	Project        domain.Project
	ObjectiveTitle *string
}

type ObjectiveRepo interface {
	Create(ctx context.Context, o *domain.Objective) error
	GetByID(ctx context.Context, id string) (*domain.Objective, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Objective, error)
	Update(ctx context.Context, o *domain.Objective) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListRecent(ctx context.Context, limit int) ([]SessionWithObjective, error)
	ListSince(ctx context.Context, from time.Time) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]ProjectWithObjective, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type BookRepo interface {
	Create(ctx context.Context, b *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, id string) error
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.DailyNote) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyNote, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.DailyNote, error)
	ListSince(ctx context.Context, from time.Time) ([]*domain.DailyNote, error)
	Update(ctx context.Context, n *domain.DailyNote) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.WeeklyReview) error
	GetByYearWeek(ctx context.Context, year, weekNumber int) (*domain.WeeklyReview, error)
	ListByYear(ctx context.Context, year int) ([]*domain.WeeklyReview, error)
	Update(ctx context.Context, r *domain.WeeklyReview) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
