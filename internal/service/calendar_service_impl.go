package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/calendar"
	"github.com/alexanderramin/rumbo/internal/repository"
)

type calendarService struct {
	notes    repository.NoteRepo
	sessions repository.SessionRepo
}

func NewCalendarService(notes repository.NoteRepo, sessions repository.SessionRepo) CalendarService {
	return &calendarService{notes: notes, sessions: sessions}
}

// Month builds the grid and stats for one month from that year's notes
// and sessions.
func (s *calendarService) Month(ctx context.Context, year int, month time.Month, now time.Time) (*MonthView, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	notes, err := s.notes.ListSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}
	sessions, err := s.sessions.ListSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	activity := calendar.BuildActivity(notes, sessions)
	return &MonthView{
		Year:  year,
		Month: month,
		Cells: calendar.MonthGrid(year, month, now, activity),
		Stats: calendar.Stats(activity, year, month, now),
	}, nil
}
