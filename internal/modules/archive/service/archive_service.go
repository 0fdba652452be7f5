package service

import (
	"context"
	"log/slog"
	"math/rand"

	"studylog/internal/modules/archive/domain"
	archiveout "studylog/internal/modules/archive/port/out"
)

// ArchiveService owns the auxiliary free-text state. Note persistence
// is best-effort like the entry store: a broken notes file degrades
// to empty notes, never to a failed command.
type ArchiveService struct {
	notes archiveout.NotesStore
	rand  *rand.Rand
	log   *slog.Logger
}

func NewArchiveService(notes archiveout.NotesStore, rand *rand.Rand, log *slog.Logger) *ArchiveService {
	return &ArchiveService{notes: notes, rand: rand, log: log}
}

func (s *ArchiveService) Notes(ctx context.Context) archiveout.Notes {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		s.log.Warn("notes store unavailable, using empty notes", "err", err)
		return archiveout.Notes{}
	}
	return notes
}

func (s *ArchiveService) SaveNotes(ctx context.Context, notes archiveout.Notes) error {
	return s.notes.Save(ctx, notes)
}

func (s *ArchiveService) ClearNotes(ctx context.Context) error {
	return s.notes.Clear(ctx)
}

func (s *ArchiveService) Quote() string {
	return domain.RandomQuote(s.rand)
}
