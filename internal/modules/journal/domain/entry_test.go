package domain_test

import (
	"testing"

	"studylog/internal/modules/journal/domain"
)

var testCategories = domain.Categories{
	Subtests:  []string{"Penalaran Umum", "Penalaran Matematika"},
	Materials: []string{"Latihan Soal", "Try Out/Mini Tryout"},
}

func validEntry() domain.Entry {
	return domain.Entry{
		ID:              "e-1",
		Date:            "2026-01-15",
		Subtest:         "Penalaran Umum",
		MaterialType:    "Latihan Soal",
		Topic:           "Silogisme",
		DurationMinutes: 45,
		CreatedAt:       1,
		UpdatedAt:       1,
	}
}

func TestValidateAcceptsWellFormedEntry(t *testing.T) {
	t.Parallel()
	if err := testCategories.Validate(validEntry()); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*domain.Entry)
	}{
		{"missing id", func(e *domain.Entry) { e.ID = "" }},
		{"malformed date", func(e *domain.Entry) { e.Date = "15/01/2026" }},
		{"unknown subtest", func(e *domain.Entry) { e.Subtest = "Fisika" }},
		{"unknown material", func(e *domain.Entry) { e.MaterialType = "Podcast" }},
		{"negative duration", func(e *domain.Entry) { e.DurationMinutes = -5 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entry := validEntry()
			tc.mutate(&entry)
			if err := testCategories.Validate(entry); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestPatchApplyMergesAndPreservesIdentity(t *testing.T) {
	t.Parallel()
	entry := validEntry()
	topic := "Analogi"
	minutes := 90
	score := 610.0
	merged := domain.Patch{Topic: &topic, DurationMinutes: &minutes, Score: &score}.Apply(entry)

	if merged.ID != entry.ID || merged.CreatedAt != entry.CreatedAt {
		t.Fatalf("patch must never alter identity fields")
	}
	if merged.Topic != "Analogi" || merged.DurationMinutes != 90 {
		t.Fatalf("patched fields not applied: %+v", merged)
	}
	if merged.Score == nil || *merged.Score != 610 {
		t.Fatalf("expected score 610, got %v", merged.Score)
	}
	if merged.Subtest != entry.Subtest {
		t.Fatalf("unpatched fields must stay untouched")
	}
}

func TestPatchClearScoreWinsOverAbsentScore(t *testing.T) {
	t.Parallel()
	entry := validEntry()
	score := 500.0
	entry.Score = &score
	merged := domain.Patch{ClearScore: true}.Apply(entry)
	if merged.Score != nil {
		t.Fatalf("expected cleared score, got %v", *merged.Score)
	}
}
