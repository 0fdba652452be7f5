package out

import (
	"context"

	"studylog/internal/modules/journal/domain"
)

// EntryStore persists the full log collection. It is best-effort from
// the service's point of view: the in-memory snapshot stays the
// authority when a load or save fails.
type EntryStore interface {
	Load(ctx context.Context) ([]domain.Entry, error)
	Save(ctx context.Context, entries []domain.Entry) error
}

// EntryIndexProjector maintains a derived queryable index of the log.
type EntryIndexProjector interface {
	UpsertEntry(ctx context.Context, entry domain.Entry) error
	DeleteEntry(ctx context.Context, id string) error
	Reset(ctx context.Context) error
	Recent(ctx context.Context, limit int) ([]domain.Entry, error)
}
