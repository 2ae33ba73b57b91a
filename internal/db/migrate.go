package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS objectives (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		target_metric    TEXT NOT NULL DEFAULT '',
		target_value     REAL NOT NULL,
		current_progress REAL NOT NULL DEFAULT 0
		                 CHECK(current_progress >= 0),
		is_active        INTEGER NOT NULL DEFAULT 1,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id               TEXT PRIMARY KEY,
		block_type       TEXT NOT NULL
		                 CHECK(block_type IN ('study','project','docs','outreach','review')),
		objective_id     TEXT REFERENCES objectives(id) ON DELETE SET NULL,
		duration_minutes INTEGER NOT NULL CHECK(duration_minutes >= 1),
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_block ON sessions(block_type)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL DEFAULT 'other'
		             CHECK(category IN ('pcb','software','docs','other')),
		status       TEXT NOT NULL DEFAULT 'idea'
		             CHECK(status IN ('idea','design','fabrication','testing','completed')),
		objective_id TEXT REFERENCES objectives(id) ON DELETE SET NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS books (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		author       TEXT NOT NULL DEFAULT '',
		total_pages  INTEGER,
		current_page INTEGER NOT NULL DEFAULT 0,
		status       TEXT NOT NULL DEFAULT 'to_read'
		             CHECK(status IN ('to_read','reading','completed','abandoned')),
		notes        TEXT NOT NULL DEFAULT '',
		start_date   TEXT,
		end_date     TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS daily_notes (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL UNIQUE,
		content    TEXT NOT NULL,
		mood       TEXT
		           CHECK(mood IS NULL OR mood IN ('great','good','neutral','bad','terrible')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS weekly_reviews (
		id                    TEXT PRIMARY KEY,
		year                  INTEGER NOT NULL,
		week_number           INTEGER NOT NULL CHECK(week_number >= 1),
		study_done            INTEGER NOT NULL DEFAULT 0,
		project_done          INTEGER NOT NULL DEFAULT 0,
		docs_done             INTEGER NOT NULL DEFAULT 0,
		outreach_done         INTEGER NOT NULL DEFAULT 0,
		review_done           INTEGER NOT NULL DEFAULT 0,
		is_valid_week         INTEGER NOT NULL DEFAULT 0,
		what_worked           TEXT NOT NULL DEFAULT '',
		blockers              TEXT NOT NULL DEFAULT '',
		next_week_adjustments TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL,
		UNIQUE(year, week_number)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reviews_year ON weekly_reviews(year, week_number)`,

	`CREATE TABLE IF NOT EXISTS user_settings (
		id    TEXT PRIMARY KEY DEFAULT 'default',
		theme TEXT NOT NULL DEFAULT 'dark'
		      CHECK(theme IN ('dark','light'))
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO user_settings (id) VALUES ('default')`,

	// Add star rating to books
	`ALTER TABLE books ADD COLUMN rating INTEGER CHECK(rating IS NULL OR (rating >= 1 AND rating <= 5))`,

	// Add free-form reflection field to weekly reviews
	`ALTER TABLE weekly_reviews ADD COLUMN free_reflection TEXT NOT NULL DEFAULT ''`,
}
