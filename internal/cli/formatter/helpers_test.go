package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{75, "1h 15m"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min))
	}
}

func TestTruncID(t *testing.T) {
	out := TruncID("abcdef1234567890")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef123")
}

func TestHumanDate(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Today", HumanDate(now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1)))
	assert.Equal(t, "Mar 5, 2024", HumanDate(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)))
}

func TestStagePill_CoversAllStages(t *testing.T) {
	labels := map[domain.ProjectStage]string{
		domain.StageIdea:        "Idea",
		domain.StageDesign:      "Design",
		domain.StageFabrication: "Fabrication",
		domain.StageTesting:     "Testing",
		domain.StageCompleted:   "Completed",
	}
	for stage, label := range labels {
		assert.Contains(t, StagePill(stage), label)
	}
}

func TestMoodLabel(t *testing.T) {
	assert.Contains(t, MoodLabel(nil), "--")
	great := domain.MoodGreat
	assert.Contains(t, MoodLabel(&great), "great")
}

func TestBlockBadge(t *testing.T) {
	assert.Contains(t, BlockBadge(domain.BlockStudy), "Study")
	assert.Contains(t, BlockBadge(domain.BlockOutreach), "Outreach")
}
