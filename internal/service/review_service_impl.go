package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/alexanderramin/rumbo/internal/week"
	"github.com/google/uuid"
)

type reviewService struct {
	reviews repository.ReviewRepo
	uow     db.UnitOfWork
}

func NewReviewService(reviews repository.ReviewRepo, uow db.UnitOfWork) ReviewService {
	return &reviewService{reviews: reviews, uow: uow}
}

// WeekSummary resolves the current week's review state, its status, and
// the streak ending at it. A week with no toggles yet reports a nil
// review and below-minimum status.
func (s *reviewService) WeekSummary(ctx context.Context, now time.Time) (*WeekSummary, error) {
	year, weekNumber := week.YearWeek(now)

	summary := &WeekSummary{
		Year:   year,
		Week:   weekNumber,
		Status: week.StatusBelow,
	}

	r, err := s.reviews.GetByYearWeek(ctx, year, weekNumber)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if r != nil {
		summary.Review = r
		summary.Status = week.Classify(r.DoneCount())
	}

	streak, err := s.Streak(ctx, now)
	if err != nil {
		return nil, err
	}
	summary.Streak = streak
	return summary, nil
}

// ToggleBlock flips one block flag for the given week, creating the
// review row on first toggle. Validity is recomputed on every write.
func (s *reviewService) ToggleBlock(ctx context.Context, year, weekNumber int, block domain.BlockType) (*domain.WeeklyReview, error) {
	if _, err := domain.ParseBlockType(string(block)); err != nil {
		return nil, err
	}
	return s.upsert(ctx, year, weekNumber, func(r *domain.WeeklyReview) error {
		return r.SetBlockDone(block, !r.BlockDone(block))
	})
}

func (s *reviewService) SaveReflection(ctx context.Context, year, weekNumber int, whatWorked, blockers, adjustments, free string) (*domain.WeeklyReview, error) {
	return s.upsert(ctx, year, weekNumber, func(r *domain.WeeklyReview) error {
		r.WhatWorked = whatWorked
		r.Blockers = blockers
		r.NextWeekAdjustments = adjustments
		r.FreeReflection = free
		return nil
	})
}

func (s *reviewService) upsert(ctx context.Context, year, weekNumber int, apply func(*domain.WeeklyReview) error) (*domain.WeeklyReview, error) {
	var saved *domain.WeeklyReview
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReviews := repository.NewSQLiteReviewRepo(tx)

		r, getErr := txReviews.GetByYearWeek(ctx, year, weekNumber)
		created := false
		switch {
		case getErr == nil:
		case errors.Is(getErr, repository.ErrNotFound):
			now := time.Now().UTC()
			r = &domain.WeeklyReview{
				ID:        uuid.New().String(),
				Year:      year,
				Week:      weekNumber,
				CreatedAt: now,
				UpdatedAt: now,
			}
			created = true
		default:
			return getErr
		}

		if err := apply(r); err != nil {
			return err
		}
		r.Recalculate()
		r.UpdatedAt = time.Now().UTC()

		var writeErr error
		if created {
			writeErr = txReviews.Create(ctx, r)
		} else {
			writeErr = txReviews.Update(ctx, r)
		}
		if writeErr != nil {
			return writeErr
		}
		saved = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Streak counts consecutive valid weeks ending at the current one.
func (s *reviewService) Streak(ctx context.Context, now time.Time) (int, error) {
	year, currentWeek := week.YearWeek(now)

	reviews, err := s.reviews.ListByYear(ctx, year)
	if err != nil {
		return 0, err
	}

	validByWeek := make(map[int]bool, len(reviews))
	for _, r := range reviews {
		validByWeek[r.Week] = r.IsValidWeek
	}
	return week.Streak(validByWeek, currentWeek), nil
}
