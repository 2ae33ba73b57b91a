package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/alexanderramin/rumbo/internal/week"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleBlock_CreatesRowOnFirstToggle(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewReviewService(reviews, uow)

	r, err := svc.ToggleBlock(ctx, 2025, 24, domain.BlockStudy)
	require.NoError(t, err)
	assert.True(t, r.StudyDone)
	assert.False(t, r.IsValidWeek, "one block is below the minimum")

	stored, err := reviews.GetByYearWeek(ctx, 2025, 24)
	require.NoError(t, err)
	assert.Equal(t, r.ID, stored.ID)
}

func TestToggleBlock_ThirdBlockMakesWeekValid(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewReviewService(reviews, uow)

	_, err := svc.ToggleBlock(ctx, 2025, 24, domain.BlockStudy)
	require.NoError(t, err)
	_, err = svc.ToggleBlock(ctx, 2025, 24, domain.BlockProject)
	require.NoError(t, err)
	r, err := svc.ToggleBlock(ctx, 2025, 24, domain.BlockReview)
	require.NoError(t, err)

	assert.Equal(t, 3, r.DoneCount())
	assert.True(t, r.IsValidWeek)

	// Toggling one back off drops below the minimum again.
	r, err = svc.ToggleBlock(ctx, 2025, 24, domain.BlockReview)
	require.NoError(t, err)
	assert.False(t, r.ReviewDone)
	assert.False(t, r.IsValidWeek)
}

func TestToggleBlock_RejectsUnknownBlock(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)

	svc := NewReviewService(reviews, uow)
	_, err := svc.ToggleBlock(context.Background(), 2025, 24, "gardening")
	assert.Error(t, err)
}

func TestSaveReflection_PreservesFlags(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewReviewService(reviews, uow)

	_, err := svc.ToggleBlock(ctx, 2025, 30, domain.BlockDocs)
	require.NoError(t, err)

	r, err := svc.SaveReflection(ctx, 2025, 30,
		"Morning sessions", "Parts on backorder", "Order earlier", "Decent week")
	require.NoError(t, err)
	assert.True(t, r.DocsDone, "reflection write should not clear block flags")
	assert.Equal(t, "Morning sessions", r.WhatWorked)
	assert.Equal(t, "Parts on backorder", r.Blockers)
	assert.Equal(t, "Order earlier", r.NextWeekAdjustments)
	assert.Equal(t, "Decent week", r.FreeReflection)
}

func TestStreak_CountsConsecutiveValidWeeks(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	year, currentWeek := week.YearWeek(now)

	valid := []domain.BlockType{domain.BlockStudy, domain.BlockProject, domain.BlockDocs}
	for _, w := range []int{currentWeek - 2, currentWeek - 1, currentWeek} {
		require.NoError(t, reviews.Create(ctx,
			testutil.NewTestReview(year, w, testutil.WithBlocksDone(valid...))))
	}
	// An older invalid week caps the streak at three.
	require.NoError(t, reviews.Create(ctx,
		testutil.NewTestReview(year, currentWeek-3,
			testutil.WithBlocksDone(domain.BlockStudy))))

	svc := NewReviewService(reviews, uow)

	streak, err := svc.Streak(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestWeekSummary_EmptyWeek(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)

	svc := NewReviewService(reviews, uow)

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	summary, err := svc.WeekSummary(context.Background(), now)
	require.NoError(t, err)
	assert.Nil(t, summary.Review)
	assert.Equal(t, week.StatusBelow, summary.Status)
	assert.Equal(t, 0, summary.Streak)
	assert.Equal(t, 2025, summary.Year)
}

func TestWeekSummary_CurrentWeekCountsWhenValid(t *testing.T) {
	_, _, _, _, _, reviews, uow := setupRepos(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	year, currentWeek := week.YearWeek(now)

	svc := NewReviewService(reviews, uow)
	for _, b := range domain.AllBlocks {
		_, err := svc.ToggleBlock(ctx, year, currentWeek, b)
		require.NoError(t, err)
	}

	summary, err := svc.WeekSummary(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, summary.Review)
	assert.Equal(t, week.StatusPerfect, summary.Status)
	assert.Equal(t, 1, summary.Streak)
}
