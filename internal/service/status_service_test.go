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

func TestStatusSummary_PartitionsTodayAndWeek(t *testing.T) {
	objectives, sessions, _, books, notes, reviews, _ := setupRepos(t)
	ctx := context.Background()

	// Wednesday June 18 2025; the running week starts Monday June 16.
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC)

	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(domain.BlockStudy, 30,
		testutil.WithCreatedAt(time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(domain.BlockProject, 45,
		testutil.WithCreatedAt(time.Date(2025, 6, 16, 19, 0, 0, 0, time.UTC)))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(domain.BlockStudy, 60,
		testutil.WithCreatedAt(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)))))

	svc := NewStatusService(objectives, sessions, books, notes, reviews)

	summary, err := svc.Summary(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.TodayMinutes)
	assert.Equal(t, 75, summary.WeekMinutes, "last week's session stays out of the weekly total")
	assert.Equal(t, 30, summary.BlockMinutes[domain.BlockStudy])
	assert.Equal(t, 45, summary.BlockMinutes[domain.BlockProject])
}

func TestStatusSummary_WeekStateAndStreak(t *testing.T) {
	objectives, sessions, _, books, notes, reviews, _ := setupRepos(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC)
	year, currentWeek := week.YearWeek(now)

	valid := []domain.BlockType{domain.BlockStudy, domain.BlockProject, domain.BlockDocs}
	require.NoError(t, reviews.Create(ctx,
		testutil.NewTestReview(year, currentWeek-1, testutil.WithBlocksDone(valid...))))
	require.NoError(t, reviews.Create(ctx,
		testutil.NewTestReview(year, currentWeek, testutil.WithBlocksDone(domain.AllBlocks...))))

	svc := NewStatusService(objectives, sessions, books, notes, reviews)

	summary, err := svc.Summary(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.WeekDoneCount)
	assert.Equal(t, week.StatusPerfect, summary.WeekStatus)
	assert.Equal(t, 2, summary.Streak)
	assert.Equal(t, currentWeek, summary.Week)
}

func TestStatusSummary_CurrentBookAndMonthStats(t *testing.T) {
	objectives, sessions, _, books, notes, reviews, _ := setupRepos(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC)

	require.NoError(t, books.Create(ctx, testutil.NewTestBook("In progress")))
	require.NoError(t, notes.Create(ctx,
		testutil.NewTestNote(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), "note day")))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(domain.BlockDocs, 20,
		testutil.WithCreatedAt(time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)))))

	svc := NewStatusService(objectives, sessions, books, notes, reviews)

	summary, err := svc.Summary(ctx, now)
	require.NoError(t, err)

	require.NotNil(t, summary.CurrentBook)
	assert.Equal(t, "In progress", summary.CurrentBook.Title)

	assert.Equal(t, 2, summary.MonthStats.ActiveDays)
	assert.Equal(t, 18, summary.MonthStats.PassedDays)
	assert.Equal(t, 11, summary.MonthStats.Percentage, "2 active of 18 passed days")
}

func TestStatusSummary_EmptyStore(t *testing.T) {
	objectives, sessions, _, books, notes, reviews, _ := setupRepos(t)

	svc := NewStatusService(objectives, sessions, books, notes, reviews)

	summary, err := svc.Summary(context.Background(), time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, summary.TodayMinutes)
	assert.Zero(t, summary.WeekMinutes)
	assert.Equal(t, week.StatusBelow, summary.WeekStatus)
	assert.Zero(t, summary.Streak)
	assert.Nil(t, summary.CurrentBook)
	assert.Empty(t, summary.ActiveGoals)
}
