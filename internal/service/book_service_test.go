package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAdd_StartsReadingToday(t *testing.T) {
	_, _, _, books, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBookService(books, uow)

	pages := 320
	book := &domain.Book{Title: "Practical Electronics", TotalPages: &pages}
	require.NoError(t, svc.Add(ctx, book))

	fetched, err := books.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookReading, fetched.Status)
	require.NotNil(t, fetched.StartDate)
	today := time.Now().UTC()
	assert.Equal(t, today.Day(), fetched.StartDate.Day())
}

func TestBookUpdateProgress_AutoCompletesAtLastPage(t *testing.T) {
	_, _, _, books, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBookService(books, uow)

	book := testutil.NewTestBook("Short read", testutil.WithPages(100))
	require.NoError(t, books.Create(ctx, book))

	updated, err := svc.UpdateProgress(ctx, book.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, domain.BookReading, updated.Status)
	assert.Equal(t, 40, updated.CurrentPage)

	updated, err = svc.UpdateProgress(ctx, book.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.BookCompleted, updated.Status)
	require.NotNil(t, updated.EndDate, "completion should stamp the end date")
}

func TestBookUpdateProgress_NoPageCountNeverCompletes(t *testing.T) {
	_, _, _, books, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBookService(books, uow)

	book := testutil.NewTestBook("Endless essays")
	require.NoError(t, books.Create(ctx, book))

	updated, err := svc.UpdateProgress(ctx, book.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, domain.BookReading, updated.Status)
	assert.Nil(t, updated.EndDate)
}

func TestBookFinishAndAbandon(t *testing.T) {
	_, _, _, books, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBookService(books, uow)

	finished := testutil.NewTestBook("Finished one")
	dropped := testutil.NewTestBook("Dropped one")
	require.NoError(t, books.Create(ctx, finished))
	require.NoError(t, books.Create(ctx, dropped))

	rating := 4
	b, err := svc.Finish(ctx, finished.ID, &rating, "solid")
	require.NoError(t, err)
	assert.Equal(t, domain.BookCompleted, b.Status)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 4, *b.Rating)

	b, err = svc.Abandon(ctx, dropped.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookAbandoned, b.Status)
}

func TestBookCurrent_MostRecentReading(t *testing.T) {
	_, _, _, books, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBookService(books, uow)

	older := testutil.NewTestBook("Older read",
		testutil.WithBookCreatedAt(time.Now().UTC().Add(-2*time.Hour)))
	done := testutil.NewTestBook("Already done",
		testutil.WithBookStatus(domain.BookCompleted))
	newer := testutil.NewTestBook("Newer read")
	require.NoError(t, books.Create(ctx, older))
	require.NoError(t, books.Create(ctx, done))
	require.NoError(t, books.Create(ctx, newer))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Newer read", current.Title)
}

func TestBookCurrent_NilWhenNothingInProgress(t *testing.T) {
	_, _, _, books, _, _, uow := setupRepos(t)

	svc := NewBookService(books, uow)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}
