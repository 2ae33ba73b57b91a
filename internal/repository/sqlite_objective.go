package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteObjectiveRepo implements ObjectiveRepo using a SQLite database.
type SQLiteObjectiveRepo struct {
	db db.DBTX
}

// NewSQLiteObjectiveRepo creates a new SQLiteObjectiveRepo.
func NewSQLiteObjectiveRepo(db db.DBTX) *SQLiteObjectiveRepo {
	return &SQLiteObjectiveRepo{db: db}
}

const objectiveColumns = `id, title, description, target_metric, target_value,
	current_progress, is_active, created_at, updated_at`

func (r *SQLiteObjectiveRepo) Create(ctx context.Context, o *domain.Objective) error {
	query := `INSERT INTO objectives (` + objectiveColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Title,
		o.Description,
		o.TargetMetric,
		o.TargetValue,
		o.CurrentProgress,
		boolToInt(o.IsActive),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting objective: %w", err)
	}
	return nil
}

func (r *SQLiteObjectiveRepo) GetByID(ctx context.Context, id string) (*domain.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE id = ?`
	return r.scanObjective(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteObjectiveRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE is_active = 1 ORDER BY created_at`
	if includeInactive {
		query = `SELECT ` + objectiveColumns + ` FROM objectives ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}
	defer rows.Close()

	var objectives []*domain.Objective
	for rows.Next() {
		o, err := r.scanObjectiveFromRows(rows)
		if err != nil {
			return nil, err
		}
		objectives = append(objectives, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating objectives: %w", err)
	}
	return objectives, nil
}

func (r *SQLiteObjectiveRepo) Update(ctx context.Context, o *domain.Objective) error {
	query := `UPDATE objectives
		SET title = ?, description = ?, target_metric = ?, target_value = ?,
		    current_progress = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		o.Title,
		o.Description,
		o.TargetMetric,
		o.TargetValue,
		o.CurrentProgress,
		boolToInt(o.IsActive),
		time.Now().UTC().Format(time.RFC3339),
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating objective: %w", err)
	}
	return requireRowAffected(res, "objective")
}

func (r *SQLiteObjectiveRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE objectives SET is_active = 0, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("deactivating objective: %w", err)
	}
	return requireRowAffected(res, "objective")
}

func (r *SQLiteObjectiveRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM objectives WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting objective: %w", err)
	}
	return nil
}

func (r *SQLiteObjectiveRepo) scanObjective(row *sql.Row) (*domain.Objective, error) {
	var o domain.Objective
	var isActive int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.TargetMetric, &o.TargetValue,
		&o.CurrentProgress, &isActive, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("objective: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning objective: %w", err)
	}
	return r.populateObjective(&o, isActive, createdAtStr, updatedAtStr)
}

func (r *SQLiteObjectiveRepo) scanObjectiveFromRows(rows *sql.Rows) (*domain.Objective, error) {
	var o domain.Objective
	var isActive int
	var createdAtStr, updatedAtStr string

	err := rows.Scan(
		&o.ID, &o.Title, &o.Description, &o.TargetMetric, &o.TargetValue,
		&o.CurrentProgress, &isActive, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning objective row: %w", err)
	}
	return r.populateObjective(&o, isActive, createdAtStr, updatedAtStr)
}

func (r *SQLiteObjectiveRepo) populateObjective(o *domain.Objective, isActive int, createdAtStr, updatedAtStr string) (*domain.Objective, error) {
	o.IsActive = intToBool(isActive)

	var parseErr error
	o.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	o.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return o, nil
}

// requireRowAffected converts a zero-row update into ErrNotFound.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
