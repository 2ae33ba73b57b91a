// Package timer implements the elapsed-seconds counter behind the focus
// timer. The ticking source lives in the caller (the TUI drives Tick once
// per second); the counter itself only tracks state.
package timer

import "fmt"

// MinCommitSeconds is the minimum elapsed time for a session to be worth
// persisting. Shorter runs are silently discarded on commit.
const MinCommitSeconds = 60

type Timer struct {
	seconds int
	running bool
}

// Start transitions to the running state. Starting while already running
// is a no-op, so re-entrant starts never produce duplicate tick sources.
func (t *Timer) Start() { t.running = true }

// Pause stops the timer without resetting elapsed time.
func (t *Timer) Pause() { t.running = false }

// Reset stops the timer and zeroes elapsed time.
func (t *Timer) Reset() {
	t.running = false
	t.seconds = 0
}

// Tick advances elapsed time by one second while running.
func (t *Timer) Tick() {
	if t.running {
		t.seconds++
	}
}

func (t *Timer) Seconds() int  { return t.seconds }
func (t *Timer) Running() bool { return t.running }

// CommitMinutes returns the whole minutes to persist for the current
// elapsed time. The second return is false below MinCommitSeconds.
func (t *Timer) CommitMinutes() (int, bool) {
	return CommitMinutesFor(t.seconds)
}

// CommitMinutesFor applies the commit rule to an elapsed-seconds value.
func CommitMinutesFor(seconds int) (int, bool) {
	if seconds < MinCommitSeconds {
		return 0, false
	}
	return seconds / 60, true
}

// FormatClock renders elapsed seconds as MM:SS, or HH:MM:SS once a full
// hour has passed, each component zero-padded to two digits.
func FormatClock(totalSeconds int) string {
	hrs := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60

	if hrs > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
