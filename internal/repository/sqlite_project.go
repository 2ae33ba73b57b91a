package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, description, category, status, objective_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		string(p.Category),
		string(p.Status),
		nullableStrToValue(p.ObjectiveID),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, description, category, status, objective_id, created_at, updated_at
		FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.Project
	var category, status string
	var objectiveID sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.Description, &category, &status, &objectiveID, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return populateProject(&p, category, status, objectiveID, createdAtStr, updatedAtStr)
}

// List returns all projects newest first, expanded with the linked
// objective's title when one is set.
func (r *SQLiteProjectRepo) List(ctx context.Context) ([]ProjectWithObjective, error) {
	query := `SELECT p.id, p.name, p.description, p.category, p.status, p.objective_id,
			p.created_at, p.updated_at, o.title
		FROM projects p
		LEFT JOIN objectives o ON p.objective_id = o.id
		ORDER BY p.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []ProjectWithObjective
	for rows.Next() {
		var p domain.Project
		var category, status string
		var objectiveID, objectiveTitle sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(&p.ID, &p.Name, &p.Description, &category, &status, &objectiveID,
			&createdAtStr, &updatedAtStr, &objectiveTitle)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		if _, err := populateProject(&p, category, status, objectiveID, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		projects = append(projects, ProjectWithObjective{
			Project:        p,
			ObjectiveTitle: nullableStrToPtr(objectiveTitle),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects
		SET name = ?, description = ?, category = ?, status = ?, objective_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		string(p.Category),
		string(p.Status),
		nullableStrToValue(p.ObjectiveID),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireRowAffected(res, "project")
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func populateProject(p *domain.Project, category, status string, objectiveID sql.NullString, createdAtStr, updatedAtStr string) (*domain.Project, error) {
	p.Category = domain.ProjectCategory(category)
	p.Status = domain.ProjectStage(status)
	p.ObjectiveID = nullableStrToPtr(objectiveID)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
