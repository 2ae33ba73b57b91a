package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBookApplyPageProgress(t *testing.T) {
	today := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	b := &Book{Title: "The Art of Electronics", TotalPages: intPtr(300), Status: BookReading}
	b.ApplyPageProgress(150, today)
	assert.Equal(t, 150, b.CurrentPage)
	assert.Equal(t, BookReading, b.Status)
	assert.Nil(t, b.EndDate)

	b.ApplyPageProgress(300, today)
	assert.Equal(t, BookCompleted, b.Status)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *b.EndDate)
}

func TestBookApplyPageProgress_NoPageCount(t *testing.T) {
	b := &Book{Title: "Essays", Status: BookReading}
	b.ApplyPageProgress(500, time.Now())
	assert.Equal(t, BookReading, b.Status, "books without a page count never auto-complete")
}

func TestBookPercentRead(t *testing.T) {
	b := &Book{Title: "T", TotalPages: intPtr(200), CurrentPage: 166}
	pct, ok := b.PercentRead()
	assert.True(t, ok)
	assert.Equal(t, 83, pct)
	assert.Equal(t, BandOnTrack, BandFor(pct))

	b.TotalPages = nil
	_, ok = b.PercentRead()
	assert.False(t, ok)
}

func TestBookFinish(t *testing.T) {
	b := &Book{Title: "T", Status: BookReading, Notes: "old"}
	b.Finish(intPtr(4), "great read", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, BookCompleted, b.Status)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 4, *b.Rating)
	assert.Equal(t, "great read", b.Notes)
	require.NotNil(t, b.EndDate)
}

func TestBookValidate(t *testing.T) {
	assert.Error(t, (&Book{}).Validate())
	assert.Error(t, (&Book{Title: "T", TotalPages: intPtr(0)}).Validate())
	assert.Error(t, (&Book{Title: "T", Rating: intPtr(6)}).Validate())
	assert.NoError(t, (&Book{Title: "T", TotalPages: intPtr(10), Rating: intPtr(5)}).Validate())
}
