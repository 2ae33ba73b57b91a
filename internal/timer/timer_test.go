package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{65, "01:05"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7325, "02:02:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestTimerStateMachine(t *testing.T) {
	var tm Timer
	assert.False(t, tm.Running())

	tm.Tick()
	assert.Equal(t, 0, tm.Seconds(), "ticks are ignored while stopped")

	tm.Start()
	tm.Tick()
	tm.Tick()
	assert.Equal(t, 2, tm.Seconds())

	tm.Start() // re-entrant start is a no-op
	tm.Tick()
	assert.Equal(t, 3, tm.Seconds())

	tm.Pause()
	tm.Tick()
	assert.Equal(t, 3, tm.Seconds(), "pause keeps elapsed time")

	tm.Start()
	tm.Tick()
	assert.Equal(t, 4, tm.Seconds())

	tm.Reset()
	assert.False(t, tm.Running())
	assert.Equal(t, 0, tm.Seconds())
}

func TestCommitMinutes(t *testing.T) {
	var tm Timer
	tm.Start()

	for i := 0; i < 59; i++ {
		tm.Tick()
	}
	_, ok := tm.CommitMinutes()
	assert.False(t, ok, "59 seconds is below the minimum")

	tm.Tick()
	min, ok := tm.CommitMinutes()
	assert.True(t, ok)
	assert.Equal(t, 1, min)

	for i := 0; i < 130; i++ {
		tm.Tick()
	}
	min, ok = tm.CommitMinutes()
	assert.True(t, ok)
	assert.Equal(t, 3, min, "190 seconds floors to 3 minutes")
}
