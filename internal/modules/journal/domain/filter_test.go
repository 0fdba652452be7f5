package domain_test

import (
	"testing"

	"studylog/internal/modules/journal/domain"
)

func sampleLog() []domain.Entry {
	return []domain.Entry{
		{ID: "a", Date: "2026-01-10", Subtest: "Penalaran Umum", MaterialType: "Latihan Soal", Topic: "Silogisme dasar", UpdatedAt: 100},
		{ID: "b", Date: "2026-01-12", Subtest: "Penalaran Matematika", MaterialType: "Try Out/Mini Tryout", Topic: "Deret", Notes: "review bab 3", UpdatedAt: 200},
		{ID: "c", Date: "2026-01-12", Subtest: "Penalaran Umum", MaterialType: "Latihan Soal", Topic: "Analogi", ResourceURL: "https://example.com/drill", UpdatedAt: 300},
		{ID: "d", Date: "2026-01-11", Subtest: "Penalaran Umum", MaterialType: "Try Out/Mini Tryout", Topic: "TO mini", UpdatedAt: 150},
	}
}

func ids(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestApplyFilterOrdersByDateThenUpdatedAtDescending(t *testing.T) {
	t.Parallel()
	got := ids(domain.ApplyFilter(sampleLog(), domain.Filter{}))
	want := []string{"c", "b", "d", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestApplyFilterDimensions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		filter domain.Filter
		want   []string
	}{
		{"subtest", domain.Filter{Subtest: "Penalaran Matematika"}, []string{"b"}},
		{"all sentinel passes everything", domain.Filter{Subtest: domain.FilterAll, Material: domain.FilterAll}, []string{"c", "b", "d", "a"}},
		{"material", domain.Filter{Material: "Try Out/Mini Tryout"}, []string{"b", "d"}},
		{"date range inclusive", domain.Filter{From: "2026-01-11", To: "2026-01-12"}, []string{"c", "b", "d"}},
		{"query matches notes case-insensitively", domain.Filter{Query: "REVIEW"}, []string{"b"}},
		{"query matches resource url", domain.Filter{Query: "example.com"}, []string{"c"}},
		{"query miss", domain.Filter{Query: "kimia"}, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ids(domain.ApplyFilter(sampleLog(), tc.filter))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestApplyFilterIsIdempotentAndLeavesInputAlone(t *testing.T) {
	t.Parallel()
	entries := sampleLog()
	filter := domain.Filter{Subtest: "Penalaran Umum"}
	first := ids(domain.ApplyFilter(entries, filter))
	second := ids(domain.ApplyFilter(entries, filter))
	if len(first) != len(second) {
		t.Fatalf("expected identical outputs, got %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical outputs, got %v then %v", first, second)
		}
	}
	if entries[0].ID != "a" {
		t.Fatalf("input slice must not be reordered, got %v", ids(entries))
	}
}
