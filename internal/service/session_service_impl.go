package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/alexanderramin/rumbo/internal/timer"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Log(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if _, err := domain.ParseBlockType(string(session.BlockType)); err != nil {
		return err
	}
	if session.DurationMinutes < 1 {
		return fmt.Errorf("session duration must be at least one minute, got %d", session.DurationMinutes)
	}
	return s.sessions.Create(ctx, session)
}

// CommitTimer turns an elapsed timer into a session record. Runs shorter
// than the commit minimum are discarded without error and without a write.
func (s *sessionService) CommitTimer(ctx context.Context, seconds int, block domain.BlockType, objectiveID *string, notes string) (session *domain.Session, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"block":   string(block),
		"seconds": seconds,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "commit-timer",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	minutes, ok := timer.CommitMinutesFor(seconds)
	if !ok {
		fields["discarded"] = true
		return nil, nil
	}

	session = &domain.Session{
		ID:              uuid.New().String(),
		BlockType:       block,
		ObjectiveID:     objectiveID,
		DurationMinutes: minutes,
		Notes:           notes,
		CreatedAt:       time.Now().UTC(),
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	fields["minutes"] = minutes
	return session, nil
}

func (s *sessionService) ListRecent(ctx context.Context, limit int) ([]repository.SessionWithObjective, error) {
	return s.sessions.ListRecent(ctx, limit)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
