package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepo_CreateAndGetByDate(t *testing.T) {
	repo := NewSQLiteNoteRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	note := testutil.NewTestNote(day, "Solid focus day", testutil.WithMood(domain.MoodGood))
	require.NoError(t, repo.Create(ctx, note))

	fetched, err := repo.GetByDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "Solid focus day", fetched.Content)
	assert.Equal(t, day, fetched.Date)
	require.NotNil(t, fetched.Mood)
	assert.Equal(t, domain.MoodGood, *fetched.Mood)
}

func TestNoteRepo_GetByDate_NotFound(t *testing.T) {
	repo := NewSQLiteNoteRepo(testutil.NewTestDB(t))

	_, err := repo.GetByDate(context.Background(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteRepo_DateIsUnique(t *testing.T) {
	repo := NewSQLiteNoteRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestNote(day, "first")))

	err := repo.Create(ctx, testutil.NewTestNote(day, "second"))
	assert.Error(t, err, "one record per calendar date")
}

func TestNoteRepo_Update(t *testing.T) {
	repo := NewSQLiteNoteRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	note := testutil.NewTestNote(day, "draft")
	require.NoError(t, repo.Create(ctx, note))

	note.Content = "final"
	mood := domain.MoodGreat
	note.Mood = &mood
	require.NoError(t, repo.Update(ctx, note))

	fetched, err := repo.GetByDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "final", fetched.Content)
	require.NotNil(t, fetched.Mood)
	assert.Equal(t, domain.MoodGreat, *fetched.Mood)
}

func TestNoteRepo_ListRecentAndSince(t *testing.T) {
	repo := NewSQLiteNoteRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for day := 1; day <= 4; day++ {
		n := testutil.NewTestNote(time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC), "entry")
		require.NoError(t, repo.Create(ctx, n))
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 4, recent[0].Date.Day(), "newest first")

	since, err := repo.ListSince(ctx, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, since, 2)
}
