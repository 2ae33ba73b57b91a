package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
)

// SQLiteBookRepo implements BookRepo using a SQLite database.
type SQLiteBookRepo struct {
	db db.DBTX
}

// NewSQLiteBookRepo creates a new SQLiteBookRepo.
func NewSQLiteBookRepo(db db.DBTX) *SQLiteBookRepo {
	return &SQLiteBookRepo{db: db}
}

const bookColumns = `id, title, author, total_pages, current_page, status,
	rating, notes, start_date, end_date, created_at, updated_at`

func (r *SQLiteBookRepo) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (` + bookColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		nullableIntToValue(b.TotalPages),
		b.CurrentPage,
		string(b.Status),
		nullableIntToValue(b.Rating),
		b.Notes,
		nullableTimeToString(b.StartDate, dateLayout),
		nullableTimeToString(b.EndDate, dateLayout),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting book: %w", err)
	}
	return nil
}

func (r *SQLiteBookRepo) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	b, err := scanBook(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("book: %w", ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

// List returns all books newest first.
func (r *SQLiteBookRepo) List(ctx context.Context) ([]*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

func (r *SQLiteBookRepo) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books
		SET title = ?, author = ?, total_pages = ?, current_page = ?, status = ?,
		    rating = ?, notes = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Title,
		b.Author,
		nullableIntToValue(b.TotalPages),
		b.CurrentPage,
		string(b.Status),
		nullableIntToValue(b.Rating),
		b.Notes,
		nullableTimeToString(b.StartDate, dateLayout),
		nullableTimeToString(b.EndDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	return requireRowAffected(res, "book")
}

func (r *SQLiteBookRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

// scanBook scans one book row given a Scan function from *sql.Row or *sql.Rows.
func scanBook(scan func(dest ...any) error) (*domain.Book, error) {
	var b domain.Book
	var status string
	var totalPages, rating sql.NullInt64
	var startDate, endDate sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(
		&b.ID, &b.Title, &b.Author, &totalPages, &b.CurrentPage, &status,
		&rating, &b.Notes, &startDate, &endDate, &createdAtStr, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning book: %w", err)
	}

	b.Status = domain.BookStatus(status)
	b.TotalPages = nullableIntToPtr(totalPages)
	b.Rating = nullableIntToPtr(rating)
	b.StartDate = parseNullableTime(startDate, dateLayout)
	b.EndDate = parseNullableTime(endDate, dateLayout)

	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &b, nil
}
