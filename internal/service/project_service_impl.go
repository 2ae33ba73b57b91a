package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork) ProjectService {
	return &projectService{projects: projects, uow: uow}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StageIdea
	}
	if p.Category == "" {
		p.Category = domain.CategoryOther
	}

	if err := p.Validate(); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]repository.ProjectWithObjective, error) {
	return s.projects.List(ctx)
}

func (s *projectService) SetStage(ctx context.Context, id string, stage domain.ProjectStage) (*domain.Project, error) {
	return s.transition(ctx, id, func(p *domain.Project) error {
		p.Status = stage
		return nil
	})
}

func (s *projectService) Advance(ctx context.Context, id string) (*domain.Project, error) {
	return s.transition(ctx, id, func(p *domain.Project) error {
		next, ok := p.NextStage()
		if !ok {
			return fmt.Errorf("project %q is already completed", p.Name)
		}
		p.Status = next
		return nil
	})
}

func (s *projectService) Retreat(ctx context.Context, id string) (*domain.Project, error) {
	return s.transition(ctx, id, func(p *domain.Project) error {
		prev, ok := p.PrevStage()
		if !ok {
			return fmt.Errorf("project %q is already at the idea stage", p.Name)
		}
		p.Status = prev
		return nil
	})
}

func (s *projectService) transition(ctx context.Context, id string, apply func(*domain.Project) error) (*domain.Project, error) {
	var updated *domain.Project
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)

		p, err := txProjects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(p); err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		p.UpdatedAt = time.Now().UTC()
		if err := txProjects.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
