package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/google/uuid"
)

type bookService struct {
	books repository.BookRepo
	uow   db.UnitOfWork
}

func NewBookService(books repository.BookRepo, uow db.UnitOfWork) BookService {
	return &bookService{books: books, uow: uow}
}

// Add registers a book and starts reading it immediately.
func (s *bookService) Add(ctx context.Context, b *domain.Book) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	b.Status = domain.BookReading
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b.StartDate = &start

	if err := b.Validate(); err != nil {
		return err
	}
	return s.books.Create(ctx, b)
}

func (s *bookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.books.List(ctx)
}

// UpdateProgress moves the bookmark inside a transaction so the read and
// the auto-completion write see the same row.
func (s *bookService) UpdateProgress(ctx context.Context, id string, page int) (*domain.Book, error) {
	return s.amend(ctx, id, func(b *domain.Book) {
		b.ApplyPageProgress(page, time.Now().UTC())
	})
}

func (s *bookService) Finish(ctx context.Context, id string, rating *int, notes string) (*domain.Book, error) {
	return s.amend(ctx, id, func(b *domain.Book) {
		b.Finish(rating, notes, time.Now().UTC())
	})
}

func (s *bookService) Abandon(ctx context.Context, id string) (*domain.Book, error) {
	return s.amend(ctx, id, func(b *domain.Book) {
		b.Status = domain.BookAbandoned
	})
}

func (s *bookService) amend(ctx context.Context, id string, apply func(*domain.Book)) (*domain.Book, error) {
	var updated *domain.Book
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBooks := repository.NewSQLiteBookRepo(tx)

		b, err := txBooks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(b)
		if err := b.Validate(); err != nil {
			return err
		}
		b.UpdatedAt = time.Now().UTC()
		if err := txBooks.Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Current returns the most recently added book still being read, or nil
// when nothing is in progress.
func (s *bookService) Current(ctx context.Context) (*domain.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.Status == domain.BookReading {
			return b, nil
		}
	}
	return nil, nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	return s.books.Delete(ctx, id)
}
