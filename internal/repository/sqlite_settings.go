package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// User settings are a single row keyed 'default', seeded by migration.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, theme FROM user_settings WHERE id = 'default'`)

	var s domain.Settings
	var theme string
	if err := row.Scan(&s.ID, &theme); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user settings: %w", err)
	}
	s.Theme = domain.Theme(theme)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO user_settings (id, theme) VALUES ('default', ?)
		ON CONFLICT(id) DO UPDATE SET theme = excluded.theme`
	if _, err := r.db.ExecContext(ctx, query, string(s.Theme)); err != nil {
		return fmt.Errorf("upserting user settings: %w", err)
	}
	return nil
}
