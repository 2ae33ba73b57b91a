package domain

import "time"

// Session is one committed block of focused work. Sessions are immutable
// once created; duration is always whole minutes.
type Session struct {
	ID              string
	BlockType       BlockType
	ObjectiveID     *string
	DurationMinutes int
	Notes           string
	CreatedAt       time.Time
}
