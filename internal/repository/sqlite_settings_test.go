package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetAndUpsert(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, s.Theme, "seeded default")

	s.Theme = domain.ThemeLight
	require.NoError(t, repo.Upsert(ctx, s))

	s, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, s.Theme)
}
