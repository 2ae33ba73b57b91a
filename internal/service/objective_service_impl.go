package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/google/uuid"
)

type objectiveService struct {
	objectives repository.ObjectiveRepo
	uow        db.UnitOfWork
}

func NewObjectiveService(objectives repository.ObjectiveRepo, uow db.UnitOfWork) ObjectiveService {
	return &objectiveService{objectives: objectives, uow: uow}
}

func (s *objectiveService) Create(ctx context.Context, o *domain.Objective) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	o.IsActive = true

	if err := o.Validate(); err != nil {
		return err
	}
	return s.objectives.Create(ctx, o)
}

func (s *objectiveService) GetByID(ctx context.Context, id string) (*domain.Objective, error) {
	return s.objectives.GetByID(ctx, id)
}

func (s *objectiveService) List(ctx context.Context, includeInactive bool) ([]*domain.Objective, error) {
	return s.objectives.List(ctx, includeInactive)
}

func (s *objectiveService) SetProgress(ctx context.Context, id string, value float64) (*domain.Objective, error) {
	return s.adjustProgress(ctx, id, func(o *domain.Objective) {
		o.CurrentProgress = value
	})
}

func (s *objectiveService) BumpProgress(ctx context.Context, id string, delta float64) (*domain.Objective, error) {
	return s.adjustProgress(ctx, id, func(o *domain.Objective) {
		o.CurrentProgress += delta
	})
}

// adjustProgress reads and rewrites one objective inside a transaction so
// concurrent bumps cannot clobber each other.
func (s *objectiveService) adjustProgress(ctx context.Context, id string, apply func(*domain.Objective)) (*domain.Objective, error) {
	var updated *domain.Objective
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txObjectives := repository.NewSQLiteObjectiveRepo(tx)

		o, err := txObjectives.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(o)
		if err := o.Validate(); err != nil {
			return err
		}
		o.UpdatedAt = time.Now().UTC()
		if err := txObjectives.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *objectiveService) Deactivate(ctx context.Context, id string) error {
	return s.objectives.Deactivate(ctx, id)
}

func (s *objectiveService) Delete(ctx context.Context, id string) error {
	return s.objectives.Delete(ctx, id)
}
