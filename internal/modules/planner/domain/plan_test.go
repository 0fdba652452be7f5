package domain_test

import (
	"testing"

	"studylog/internal/modules/planner/domain"
)

var subjects = []string{"PU", "PPU", "PMM", "PK", "LBI", "LBE", "PM"}
var rotation = []string{"Latihan Soal", "Pembahasan Soal", "Materi YouTube", "Baca/Rangkuman", "Try Out/Mini Tryout"}

func TestGenerateProducesOneSlotPerSubjectInOrder(t *testing.T) {
	t.Parallel()
	plan := domain.Generate(subjects, rotation)
	if len(plan) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(plan))
	}
	for i, slot := range plan {
		if slot.DayIndex != i {
			t.Fatalf("slot %d has day index %d", i, slot.DayIndex)
		}
		if slot.Subtest != subjects[i] {
			t.Fatalf("slot %d expected subject %s, got %s", i, subjects[i], slot.Subtest)
		}
		if slot.MaterialType != rotation[i%len(rotation)] {
			t.Fatalf("slot %d expected material %s, got %s", i, rotation[i%len(rotation)], slot.MaterialType)
		}
		if slot.Suggestion == "" {
			t.Fatalf("slot %d missing suggestion", i)
		}
	}
	// Rotation wraps after the fifth subject.
	if plan[5].MaterialType != rotation[0] || plan[6].MaterialType != rotation[1] {
		t.Fatalf("rotation must wrap modulo its length: %+v", plan[5:])
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()
	first := domain.Generate(subjects, rotation)
	second := domain.Generate(subjects, rotation)
	if len(first) != len(second) {
		t.Fatalf("expected identical plans")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateWithEmptyInputs(t *testing.T) {
	t.Parallel()
	if plan := domain.Generate(nil, rotation); plan != nil {
		t.Fatalf("expected no plan without subjects")
	}
	if plan := domain.Generate(subjects, nil); plan != nil {
		t.Fatalf("expected no plan without a rotation")
	}
}
