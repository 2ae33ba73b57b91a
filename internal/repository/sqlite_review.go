package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteReviewRepo implements ReviewRepo using a SQLite database.
type SQLiteReviewRepo struct {
	db db.DBTX
}

// NewSQLiteReviewRepo creates a new SQLiteReviewRepo.
func NewSQLiteReviewRepo(db db.DBTX) *SQLiteReviewRepo {
	return &SQLiteReviewRepo{db: db}
}

const reviewColumns = `id, year, week_number, study_done, project_done, docs_done,
	outreach_done, review_done, is_valid_week, what_worked, blockers,
	next_week_adjustments, free_reflection, created_at, updated_at`

func (r *SQLiteReviewRepo) Create(ctx context.Context, rev *domain.WeeklyReview) error {
	query := `INSERT INTO weekly_reviews (` + reviewColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rev.ID,
		rev.Year,
		rev.Week,
		boolToInt(rev.StudyDone),
		boolToInt(rev.ProjectDone),
		boolToInt(rev.DocsDone),
		boolToInt(rev.OutreachDone),
		boolToInt(rev.ReviewDone),
		boolToInt(rev.IsValidWeek),
		rev.WhatWorked,
		rev.Blockers,
		rev.NextWeekAdjustments,
		rev.FreeReflection,
		rev.CreatedAt.Format(time.RFC3339),
		rev.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting weekly review: %w", err)
	}
	return nil
}

func (r *SQLiteReviewRepo) GetByYearWeek(ctx context.Context, year, weekNumber int) (*domain.WeeklyReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM weekly_reviews WHERE year = ? AND week_number = ?`
	row := r.db.QueryRowContext(ctx, query, year, weekNumber)

	rev, err := scanReview(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("weekly review: %w", ErrNotFound)
		}
		return nil, err
	}
	return rev, nil
}

// ListByYear returns a year's reviews, newest week first.
func (r *SQLiteReviewRepo) ListByYear(ctx context.Context, year int) ([]*domain.WeeklyReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM weekly_reviews WHERE year = ? ORDER BY week_number DESC`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("listing reviews for %d: %w", year, err)
	}
	defer rows.Close()

	var reviews []*domain.WeeklyReview
	for rows.Next() {
		rev, err := scanReview(rows.Scan)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}
	return reviews, nil
}

func (r *SQLiteReviewRepo) Update(ctx context.Context, rev *domain.WeeklyReview) error {
	query := `UPDATE weekly_reviews
		SET study_done = ?, project_done = ?, docs_done = ?, outreach_done = ?,
		    review_done = ?, is_valid_week = ?, what_worked = ?, blockers = ?,
		    next_week_adjustments = ?, free_reflection = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(rev.StudyDone),
		boolToInt(rev.ProjectDone),
		boolToInt(rev.DocsDone),
		boolToInt(rev.OutreachDone),
		boolToInt(rev.ReviewDone),
		boolToInt(rev.IsValidWeek),
		rev.WhatWorked,
		rev.Blockers,
		rev.NextWeekAdjustments,
		rev.FreeReflection,
		time.Now().UTC().Format(time.RFC3339),
		rev.ID,
	)
	if err != nil {
		return fmt.Errorf("updating weekly review: %w", err)
	}
	return requireRowAffected(res, "weekly review")
}

func (r *SQLiteReviewRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM weekly_reviews WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting weekly review: %w", err)
	}
	return nil
}

func scanReview(scan func(dest ...any) error) (*domain.WeeklyReview, error) {
	var rev domain.WeeklyReview
	var study, project, docs, outreach, review, valid int
	var createdAtStr, updatedAtStr string

	err := scan(
		&rev.ID, &rev.Year, &rev.Week, &study, &project, &docs,
		&outreach, &review, &valid, &rev.WhatWorked, &rev.Blockers,
		&rev.NextWeekAdjustments, &rev.FreeReflection, &createdAtStr, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning weekly review: %w", err)
	}

	rev.StudyDone = intToBool(study)
	rev.ProjectDone = intToBool(project)
	rev.DocsDone = intToBool(docs)
	rev.OutreachDone = intToBool(outreach)
	rev.ReviewDone = intToBool(review)
	rev.IsValidWeek = intToBool(valid)

	var parseErr error
	rev.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	rev.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &rev, nil
}
