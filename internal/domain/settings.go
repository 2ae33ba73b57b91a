package domain

// Settings is the single persisted preferences row (id 'default').
type Settings struct {
	ID    string
	Theme Theme
}
