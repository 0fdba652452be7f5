package out_test

import (
	"context"
	"path/filepath"
	"testing"

	"studylog/internal/modules/journal/adapter/out"
	"studylog/internal/modules/journal/domain"
)

func TestProjectorUpsertRecentDelete(t *testing.T) {
	t.Parallel()
	projector, err := out.NewSQLiteEntryProjector(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	ctx := context.Background()

	score := 580.0
	entries := []domain.Entry{
		{ID: "a", Date: "2026-01-09", Subtest: "PU", MaterialType: "Latihan Soal", DurationMinutes: 30, CreatedAt: 1, UpdatedAt: 1},
		{ID: "b", Date: "2026-01-10", Subtest: "PM", MaterialType: "Try Out/Mini Tryout", DurationMinutes: 90, Score: &score, CreatedAt: 2, UpdatedAt: 2},
		{ID: "c", Date: "2026-01-10", Subtest: "PU", MaterialType: "Latihan Soal", DurationMinutes: 15, CreatedAt: 3, UpdatedAt: 5},
	}
	for _, e := range entries {
		if err := projector.UpsertEntry(ctx, e); err != nil {
			t.Fatalf("upsert %s: %v", e.ID, err)
		}
	}

	recent, err := projector.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recent))
	}
	if recent[0].ID != "c" || recent[1].ID != "b" {
		t.Fatalf("expected date desc then updated_at desc, got %s, %s", recent[0].ID, recent[1].ID)
	}
	if recent[1].Score == nil || *recent[1].Score != 580 {
		t.Fatalf("score must survive the index round-trip")
	}
	if recent[0].Score != nil {
		t.Fatalf("null score must come back absent")
	}

	// Upsert with the same id replaces the row.
	entries[2].DurationMinutes = 45
	if err := projector.UpsertEntry(ctx, entries[2]); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	recent, err = projector.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if recent[0].DurationMinutes != 45 {
		t.Fatalf("expected replaced row, got %d minutes", recent[0].DurationMinutes)
	}

	if err := projector.DeleteEntry(ctx, "c"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	recent, err = projector.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent after reset: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected empty index after reset, got %d rows", len(recent))
	}
}
