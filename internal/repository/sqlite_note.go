package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(db db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: db}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.DailyNote) error {
	query := `INSERT INTO daily_notes (id, date, content, mood, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Date.Format(dateLayout),
		n.Content,
		moodToValue(n.Mood),
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting daily note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DailyNote, error) {
	query := `SELECT id, date, content, mood, created_at, updated_at
		FROM daily_notes WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date.Format(dateLayout))

	n, err := scanNote(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily note: %w", ErrNotFound)
		}
		return nil, err
	}
	return n, nil
}

// ListRecent returns the newest notes first, capped at limit.
func (r *SQLiteNoteRepo) ListRecent(ctx context.Context, limit int) ([]*domain.DailyNote, error) {
	query := `SELECT id, date, content, mood, created_at, updated_at
		FROM daily_notes ORDER BY date DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

func (r *SQLiteNoteRepo) ListSince(ctx context.Context, from time.Time) ([]*domain.DailyNote, error) {
	query := `SELECT id, date, content, mood, created_at, updated_at
		FROM daily_notes WHERE date >= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing notes since %s: %w", from.Format(dateLayout), err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

func (r *SQLiteNoteRepo) Update(ctx context.Context, n *domain.DailyNote) error {
	query := `UPDATE daily_notes SET content = ?, mood = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		n.Content,
		moodToValue(n.Mood),
		time.Now().UTC().Format(time.RFC3339),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating daily note: %w", err)
	}
	return requireRowAffected(res, "daily note")
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM daily_notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting daily note: %w", err)
	}
	return nil
}

func collectNotes(rows *sql.Rows) ([]*domain.DailyNote, error) {
	var notes []*domain.DailyNote
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

func scanNote(scan func(dest ...any) error) (*domain.DailyNote, error) {
	var n domain.DailyNote
	var dateStr string
	var mood sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(&n.ID, &dateStr, &n.Content, &mood, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning daily note: %w", err)
	}

	if mood.Valid {
		m := domain.Mood(mood.String)
		n.Mood = &m
	}

	var parseErr error
	n.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date: %w", parseErr)
	}
	n.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	n.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &n, nil
}

func moodToValue(m *domain.Mood) interface{} {
	if m == nil {
		return nil
	}
	return string(*m)
}
