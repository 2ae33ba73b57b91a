package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/google/uuid"
)

type noteService struct {
	notes    repository.NoteRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewNoteService(notes repository.NoteRepo, uow db.UnitOfWork, observers ...UseCaseObserver) NoteService {
	return &noteService{
		notes:    notes,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Save upserts the note for one date: a second write to the same date
// replaces the content and mood rather than adding a row.
func (s *noteService) Save(ctx context.Context, date time.Time, content string, mood *domain.Mood) (note *domain.DailyNote, err error) {
	startedAt := time.Now().UTC()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	fields := map[string]any{"date": day.Format("2006-01-02")}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-note",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if content == "" {
		return nil, fmt.Errorf("note content is required")
	}
	if mood != nil && !domain.ValidMoods[string(*mood)] {
		return nil, fmt.Errorf("unknown mood %q", *mood)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNotes := repository.NewSQLiteNoteRepo(tx)

		existing, getErr := txNotes.GetByDate(ctx, day)
		switch {
		case getErr == nil:
			existing.Content = content
			existing.Mood = mood
			existing.UpdatedAt = time.Now().UTC()
			if updErr := txNotes.Update(ctx, existing); updErr != nil {
				return updErr
			}
			note = existing
			return nil
		case errors.Is(getErr, repository.ErrNotFound):
			now := time.Now().UTC()
			note = &domain.DailyNote{
				ID:        uuid.New().String(),
				Date:      day,
				Content:   content,
				Mood:      mood,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return txNotes.Create(ctx, note)
		default:
			return getErr
		}
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetByDate(ctx context.Context, date time.Time) (*domain.DailyNote, error) {
	return s.notes.GetByDate(ctx, date)
}

func (s *noteService) ListRecent(ctx context.Context, limit int) ([]*domain.DailyNote, error) {
	return s.notes.ListRecent(ctx, limit)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
