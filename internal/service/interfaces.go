package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rumbo/internal/calendar"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/alexanderramin/rumbo/internal/week"
)

type ObjectiveService interface {
	Create(ctx context.Context, o *domain.Objective) error
	GetByID(ctx context.Context, id string) (*domain.Objective, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Objective, error)
	SetProgress(ctx context.Context, id string, value float64) (*domain.Objective, error)
	BumpProgress(ctx context.Context, id string, delta float64) (*domain.Objective, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	Log(ctx context.Context, s *domain.Session) error
	CommitTimer(ctx context.Context, seconds int, block domain.BlockType, objectiveID *string, notes string) (*domain.Session, error)
	ListRecent(ctx context.Context, limit int) ([]repository.SessionWithObjective, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]repository.ProjectWithObjective, error)
	SetStage(ctx context.Context, id string, stage domain.ProjectStage) (*domain.Project, error)
	Advance(ctx context.Context, id string) (*domain.Project, error)
	Retreat(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type BookService interface {
	Add(ctx context.Context, b *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	UpdateProgress(ctx context.Context, id string, page int) (*domain.Book, error)
	Finish(ctx context.Context, id string, rating *int, notes string) (*domain.Book, error)
	Abandon(ctx context.Context, id string) (*domain.Book, error)
	Current(ctx context.Context) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	Save(ctx context.Context, date time.Time, content string, mood *domain.Mood) (*domain.DailyNote, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyNote, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.DailyNote, error)
	Delete(ctx context.Context, id string) error
}

// WeekSummary is the review view for one week: its record (nil when no
// block has been toggled yet), the derived status, and the streak ending
// at that week.
type WeekSummary struct {
	Year   int
	Week   int
	Review *domain.WeeklyReview
	Status week.Status
	Streak int
}

type ReviewService interface {
	WeekSummary(ctx context.Context, now time.Time) (*WeekSummary, error)
	ToggleBlock(ctx context.Context, year, weekNumber int, block domain.BlockType) (*domain.WeeklyReview, error)
	SaveReflection(ctx context.Context, year, weekNumber int, whatWorked, blockers, adjustments, free string) (*domain.WeeklyReview, error)
	Streak(ctx context.Context, now time.Time) (int, error)
}

// MonthView bundles everything the calendar rendering needs for one month.
type MonthView struct {
	Year  int
	Month time.Month
	Cells []calendar.Cell
	Stats calendar.MonthStats
}

type CalendarService interface {
	Month(ctx context.Context, year int, month time.Month, now time.Time) (*MonthView, error)
}

// StatusSummary is the dashboard aggregate: today's and the running
// week's logged minutes, per-block weekly totals, the week's review
// state, the streak, the book in progress, and this month's density.
type StatusSummary struct {
	GeneratedAt   time.Time
	TodayMinutes  int
	WeekMinutes   int
	BlockMinutes  map[domain.BlockType]int
	Year          int
	Week          int
	WeekDoneCount int
	WeekStatus    week.Status
	Streak        int
	CurrentBook   *domain.Book
	MonthStats    calendar.MonthStats
	ActiveGoals   []*domain.Objective
}

type StatusService interface {
	Summary(ctx context.Context, now time.Time) (*StatusSummary, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	SetTheme(ctx context.Context, theme domain.Theme) (*domain.Settings, error)
}
