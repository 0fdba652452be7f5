package out

import "context"

// Notes holds the two free-text fields kept alongside the log.
type Notes struct {
	Motivation string
	Reasons    string
}

// NotesStore persists the notes. Load on an empty store returns zero
// values without error.
type NotesStore interface {
	Load(ctx context.Context) (Notes, error)
	Save(ctx context.Context, notes Notes) error
	Clear(ctx context.Context) error
}
