package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyReviewFlags(t *testing.T) {
	r := &WeeklyReview{Year: 2025, Week: 10}
	assert.Equal(t, 0, r.DoneCount())
	assert.False(t, r.IsValidWeek)

	require.NoError(t, r.SetBlockDone(BlockStudy, true))
	require.NoError(t, r.SetBlockDone(BlockDocs, true))
	assert.Equal(t, 2, r.DoneCount())
	assert.False(t, r.IsValidWeek, "two blocks is below the minimum")

	require.NoError(t, r.SetBlockDone(BlockReview, true))
	assert.Equal(t, 3, r.DoneCount())
	assert.True(t, r.IsValidWeek)

	require.NoError(t, r.SetBlockDone(BlockDocs, false))
	assert.False(t, r.IsValidWeek, "unsetting a flag recomputes validity")

	assert.Error(t, r.SetBlockDone("sleep", true))
}
