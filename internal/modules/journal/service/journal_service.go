package service

import (
	"context"
	"log/slog"

	"studylog/internal/modules/journal/domain"
	journalout "studylog/internal/modules/journal/port/out"
	"studylog/internal/platform/clock"
	"studylog/internal/platform/dates"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/platform/id"
)

// JournalService owns the log collection. The in-memory collection is
// the authority for the whole session: the store is read once, and
// persistence plus the index projection are best-effort side effects
// of every mutation. When the store misbehaves the service keeps
// operating on what it has and leaves a diagnostic.
type JournalService struct {
	clock      clock.Clock
	idGen      id.Generator
	store      journalout.EntryStore
	projector  journalout.EntryIndexProjector
	categories domain.Categories
	log        *slog.Logger

	entries []domain.Entry
	loaded  bool
}

func NewJournalService(clock clock.Clock, idGen id.Generator, store journalout.EntryStore, projector journalout.EntryIndexProjector, categories domain.Categories, log *slog.Logger) *JournalService {
	return &JournalService{clock: clock, idGen: idGen, store: store, projector: projector, categories: categories, log: log}
}

// snapshot lazily loads the collection on first use. A load failure
// degrades to an empty log; it does not get retried, so later
// mutations are not lost to a flapping store.
func (s *JournalService) snapshot(ctx context.Context) []domain.Entry {
	if !s.loaded {
		entries, err := s.store.Load(ctx)
		if err != nil {
			s.log.Warn("entry store unavailable, starting from empty log", "err", err)
			entries = nil
		}
		s.entries = entries
		s.loaded = true
	}
	return s.entries
}

func (s *JournalService) List(ctx context.Context) []domain.Entry {
	return s.snapshot(ctx)
}

func (s *JournalService) Add(ctx context.Context, draft domain.Entry) (domain.Entry, error) {
	if draft.DurationMinutes < 0 {
		draft.DurationMinutes = 0
	}
	now := s.clock.Now()
	if draft.Date == "" {
		draft.Date = dates.DayKey(now)
	}
	draft.ID = s.idGen.New()
	draft.CreatedAt = now.UnixMilli()
	draft.UpdatedAt = draft.CreatedAt
	if err := s.categories.Validate(draft); err != nil {
		return domain.Entry{}, err
	}
	s.entries = append([]domain.Entry{draft}, s.snapshot(ctx)...)
	s.persist(ctx)
	s.project(ctx, draft)
	return draft, nil
}

func (s *JournalService) Update(ctx context.Context, entryID string, patch domain.Patch) (domain.Entry, error) {
	entries := s.snapshot(ctx)
	for i, e := range entries {
		if e.ID != entryID {
			continue
		}
		merged := patch.Apply(e)
		if merged.DurationMinutes < 0 {
			merged.DurationMinutes = 0
		}
		merged.UpdatedAt = s.clock.Now().UnixMilli()
		if err := s.categories.Validate(merged); err != nil {
			return domain.Entry{}, err
		}
		entries[i] = merged
		s.persist(ctx)
		s.project(ctx, merged)
		return merged, nil
	}
	return domain.Entry{}, apperrors.ErrNotFound
}

func (s *JournalService) Remove(ctx context.Context, entryID string) error {
	entries := s.snapshot(ctx)
	for i, e := range entries {
		if e.ID != entryID {
			continue
		}
		s.entries = append(entries[:i], entries[i+1:]...)
		s.persist(ctx)
		if err := s.projector.DeleteEntry(ctx, entryID); err != nil {
			s.log.Warn("entry index delete failed", "id", entryID, "err", err)
		}
		return nil
	}
	return apperrors.ErrNotFound
}

// ReplaceAll installs the given collection verbatim. The archive
// codec validates document shape before calling this.
func (s *JournalService) ReplaceAll(ctx context.Context, entries []domain.Entry) {
	s.entries = entries
	s.loaded = true
	s.persist(ctx)
	s.Reindex(ctx)
}

// Reindex rebuilds the derived index from the full collection.
func (s *JournalService) Reindex(ctx context.Context) {
	if err := s.projector.Reset(ctx); err != nil {
		s.log.Warn("entry index reset failed", "err", err)
		return
	}
	for _, e := range s.snapshot(ctx) {
		s.project(ctx, e)
	}
}

func (s *JournalService) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	return s.projector.Recent(ctx, limit)
}

func (s *JournalService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.entries); err != nil {
		s.log.Warn("entry store save failed, log kept in memory", "err", err)
	}
}

func (s *JournalService) project(ctx context.Context, entry domain.Entry) {
	if err := s.projector.UpsertEntry(ctx, entry); err != nil {
		s.log.Warn("entry index upsert failed", "id", entry.ID, "err", err)
	}
}
