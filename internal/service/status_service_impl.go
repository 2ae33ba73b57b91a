package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/calendar"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/alexanderramin/rumbo/internal/week"
)

type statusService struct {
	objectives repository.ObjectiveRepo
	sessions   repository.SessionRepo
	books      repository.BookRepo
	notes      repository.NoteRepo
	reviews    repository.ReviewRepo
}

func NewStatusService(
	objectives repository.ObjectiveRepo,
	sessions repository.SessionRepo,
	books repository.BookRepo,
	notes repository.NoteRepo,
	reviews repository.ReviewRepo,
) StatusService {
	return &statusService{
		objectives: objectives,
		sessions:   sessions,
		books:      books,
		notes:      notes,
		reviews:    reviews,
	}
}

// Summary assembles the dashboard aggregate for the given instant.
func (s *statusService) Summary(ctx context.Context, now time.Time) (*StatusSummary, error) {
	now = now.UTC()
	year, weekNumber := week.YearWeek(now)
	weekStart := startOfWeek(now)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	sessions, err := s.sessions.ListSince(ctx, yearStart)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	notes, err := s.notes.ListSince(ctx, yearStart)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}

	summary := &StatusSummary{
		GeneratedAt:  now,
		BlockMinutes: make(map[domain.BlockType]int, len(domain.AllBlocks)),
		Year:         year,
		Week:         weekNumber,
		WeekStatus:   week.StatusBelow,
	}

	todayKey := now.Format(calendar.DateLayout)
	for _, session := range sessions {
		if session.CreatedAt.Format(calendar.DateLayout) == todayKey {
			summary.TodayMinutes += session.DurationMinutes
		}
		if !session.CreatedAt.Before(weekStart) {
			summary.WeekMinutes += session.DurationMinutes
			summary.BlockMinutes[session.BlockType] += session.DurationMinutes
		}
	}

	reviews, err := s.reviews.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("loading reviews: %w", err)
	}
	validByWeek := make(map[int]bool, len(reviews))
	for _, r := range reviews {
		validByWeek[r.Week] = r.IsValidWeek
		if r.Week == weekNumber {
			summary.WeekDoneCount = r.DoneCount()
			summary.WeekStatus = week.Classify(r.DoneCount())
		}
	}
	summary.Streak = week.Streak(validByWeek, weekNumber)

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}
	for _, b := range books {
		if b.Status == domain.BookReading {
			summary.CurrentBook = b
			break
		}
	}

	activity := calendar.BuildActivity(notes, sessions)
	summary.MonthStats = calendar.Stats(activity, now.Year(), now.Month(), now)

	goals, err := s.objectives.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading objectives: %w", err)
	}
	summary.ActiveGoals = goals

	return summary, nil
}

// startOfWeek returns midnight of the Monday beginning the given day's week.
func startOfWeek(t time.Time) time.Time {
	dayNum := int(t.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(dayNum - 1))
}
