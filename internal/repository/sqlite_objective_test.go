package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteObjectiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	obj := testutil.NewTestObjective("Publish 12 articles",
		testutil.WithTarget("articles", 12),
		testutil.WithProgress(3))
	require.NoError(t, repo.Create(ctx, obj))

	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Publish 12 articles", fetched.Title)
	assert.Equal(t, "articles", fetched.TargetMetric)
	assert.Equal(t, 12.0, fetched.TargetValue)
	assert.Equal(t, 3.0, fetched.CurrentProgress)
	assert.True(t, fetched.IsActive)
}

func TestObjectiveRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteObjectiveRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestObjectiveRepo_List_ActiveOnly(t *testing.T) {
	repo := NewSQLiteObjectiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	active := testutil.NewTestObjective("Active")
	inactive := testutil.NewTestObjective("Inactive", testutil.WithInactive())
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestObjectiveRepo_UpdateProgress(t *testing.T) {
	repo := NewSQLiteObjectiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	obj := testutil.NewTestObjective("Read", testutil.WithTarget("books", 10))
	require.NoError(t, repo.Create(ctx, obj))

	obj.CurrentProgress = 7
	require.NoError(t, repo.Update(ctx, obj))

	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.0, fetched.CurrentProgress)
}

func TestObjectiveRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteObjectiveRepo(testutil.NewTestDB(t))

	obj := testutil.NewTestObjective("Ghost")
	err := repo.Update(context.Background(), obj)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestObjectiveRepo_Deactivate(t *testing.T) {
	repo := NewSQLiteObjectiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	obj := testutil.NewTestObjective("Soon gone")
	require.NoError(t, repo.Create(ctx, obj))
	require.NoError(t, repo.Deactivate(ctx, obj.ID))

	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}
