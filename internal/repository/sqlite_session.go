package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, block_type, objective_id, duration_minutes, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.BlockType),
		nullableStrToValue(s.ObjectiveID),
		s.DurationMinutes,
		s.Notes,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, block_type, objective_id, duration_minutes, notes, created_at
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Session
	var blockType string
	var objectiveID sql.NullString
	var createdAtStr string

	err := row.Scan(&s.ID, &blockType, &objectiveID, &s.DurationMinutes, &s.Notes, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return populateSession(&s, blockType, objectiveID, createdAtStr)
}

// ListRecent returns the newest sessions first, expanded with the linked
// objective's title when one is set.
func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, limit int) ([]SessionWithObjective, error) {
	query := `SELECT s.id, s.block_type, s.objective_id, s.duration_minutes, s.notes, s.created_at,
			o.title
		FROM sessions s
		LEFT JOIN objectives o ON s.objective_id = o.id
		ORDER BY s.created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionWithObjective
	for rows.Next() {
		var s domain.Session
		var blockType string
		var objectiveID, objectiveTitle sql.NullString
		var createdAtStr string

		err := rows.Scan(&s.ID, &blockType, &objectiveID, &s.DurationMinutes, &s.Notes, &createdAtStr, &objectiveTitle)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		if _, err := populateSession(&s, blockType, objectiveID, createdAtStr); err != nil {
			return nil, err
		}
		sessions = append(sessions, SessionWithObjective{
			Session:        s,
			ObjectiveTitle: nullableStrToPtr(objectiveTitle),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) ListSince(ctx context.Context, from time.Time) ([]*domain.Session, error) {
	query := `SELECT id, block_type, objective_id, duration_minutes, notes, created_at
		FROM sessions WHERE created_at >= ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, from.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing sessions since %s: %w", from.Format(dateLayout), err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var blockType string
		var objectiveID sql.NullString
		var createdAtStr string

		err := rows.Scan(&s.ID, &blockType, &objectiveID, &s.DurationMinutes, &s.Notes, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, parseErr := populateSession(&s, blockType, objectiveID, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// populateSession fills in parsed fields on a Session after scanning raw values.
func populateSession(s *domain.Session, blockType string, objectiveID sql.NullString, createdAtStr string) (*domain.Session, error) {
	s.BlockType = domain.BlockType(blockType)
	s.ObjectiveID = nullableStrToPtr(objectiveID)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return s, nil
}
