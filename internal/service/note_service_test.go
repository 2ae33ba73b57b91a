package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteSave_CreatesThenReplacesByDate(t *testing.T) {
	_, _, _, _, notes, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewNoteService(notes, uow)
	day := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	mood := domain.MoodGood
	first, err := svc.Save(ctx, day, "Soldered the first prototype", &mood)
	require.NoError(t, err)
	require.NotNil(t, first)

	better := domain.MoodGreat
	second, err := svc.Save(ctx, day, "Prototype works!", &better)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same date should update, not add")

	listed, err := notes.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1, "one row per date")
	assert.Equal(t, "Prototype works!", listed[0].Content)
	require.NotNil(t, listed[0].Mood)
	assert.Equal(t, domain.MoodGreat, *listed[0].Mood)
}

func TestNoteSave_NormalizesToMidnight(t *testing.T) {
	_, _, _, _, notes, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewNoteService(notes, uow)

	morning := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)

	_, err := svc.Save(ctx, morning, "first", nil)
	require.NoError(t, err)
	_, err = svc.Save(ctx, evening, "second", nil)
	require.NoError(t, err)

	listed, err := notes.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, listed, 1, "different times on one date share the row")
}

func TestNoteSave_RejectsEmptyContentAndBadMood(t *testing.T) {
	_, _, _, _, notes, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewNoteService(notes, uow)
	day := time.Now().UTC()

	_, err := svc.Save(ctx, day, "", nil)
	assert.Error(t, err)

	bogus := domain.Mood("ecstatic")
	_, err = svc.Save(ctx, day, "content", &bogus)
	assert.Error(t, err)
}
