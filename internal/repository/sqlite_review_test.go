package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepo_CreateAndGetByYearWeek(t *testing.T) {
	repo := NewSQLiteReviewRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rev := testutil.NewTestReview(2025, 10,
		testutil.WithBlocksDone(domain.BlockStudy, domain.BlockDocs, domain.BlockReview))
	rev.WhatWorked = "Morning sessions"
	require.NoError(t, repo.Create(ctx, rev))

	fetched, err := repo.GetByYearWeek(ctx, 2025, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, fetched.DoneCount())
	assert.True(t, fetched.IsValidWeek)
	assert.Equal(t, "Morning sessions", fetched.WhatWorked)
	assert.True(t, fetched.BlockDone(domain.BlockDocs))
	assert.False(t, fetched.BlockDone(domain.BlockProject))
}

func TestReviewRepo_GetByYearWeek_NotFound(t *testing.T) {
	repo := NewSQLiteReviewRepo(testutil.NewTestDB(t))

	_, err := repo.GetByYearWeek(context.Background(), 2025, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewRepo_YearWeekIsUnique(t *testing.T) {
	repo := NewSQLiteReviewRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestReview(2025, 10)))
	err := repo.Create(ctx, testutil.NewTestReview(2025, 10))
	assert.Error(t, err, "one record per (year, week)")

	// Same week in another year is a different record.
	assert.NoError(t, repo.Create(ctx, testutil.NewTestReview(2024, 10)))
}

func TestReviewRepo_Update(t *testing.T) {
	repo := NewSQLiteReviewRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rev := testutil.NewTestReview(2025, 10)
	require.NoError(t, repo.Create(ctx, rev))

	require.NoError(t, rev.SetBlockDone(domain.BlockStudy, true))
	rev.FreeReflection = "Better than expected"
	require.NoError(t, repo.Update(ctx, rev))

	fetched, err := repo.GetByYearWeek(ctx, 2025, 10)
	require.NoError(t, err)
	assert.True(t, fetched.StudyDone)
	assert.Equal(t, "Better than expected", fetched.FreeReflection)
}

func TestReviewRepo_ListByYear(t *testing.T) {
	repo := NewSQLiteReviewRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestReview(2025, 8)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestReview(2025, 10)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestReview(2024, 50)))

	list, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 10, list[0].Week, "newest week first")
	assert.Equal(t, 8, list[1].Week)
}
