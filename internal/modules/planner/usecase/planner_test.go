package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	journaldto "studylog/internal/modules/journal/dto"
	plannerout "studylog/internal/modules/planner/adapter/out"
	"studylog/internal/modules/planner/service"
	"studylog/internal/modules/planner/usecase"
	apperrors "studylog/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingJournal struct {
	added []journaldto.AddInput
}

func (r *recordingJournal) Add(_ context.Context, input journaldto.AddInput) (journaldto.Entry, error) {
	r.added = append(r.added, input)
	return journaldto.Entry{ID: "new-entry", Date: input.Date}, nil
}
func (r *recordingJournal) Update(context.Context, journaldto.UpdateInput) (journaldto.UpdateOutput, error) {
	return journaldto.UpdateOutput{}, nil
}
func (r *recordingJournal) Remove(context.Context, string) (journaldto.RemoveOutput, error) {
	return journaldto.RemoveOutput{}, nil
}
func (r *recordingJournal) List(context.Context, journaldto.ListInput) ([]journaldto.Entry, error) {
	return nil, nil
}
func (r *recordingJournal) ReplaceAll(context.Context, []journaldto.Entry) error { return nil }
func (r *recordingJournal) Recent(context.Context, int) ([]journaldto.Entry, error) {
	return nil, nil
}
func (r *recordingJournal) Reindex(context.Context) error { return nil }

var subjects = []string{"PU", "PPU", "PMM"}
var rotation = []string{"Latihan Soal", "Pembahasan Soal"}

func TestGeneratePersistsAndRegenerationReplacesWholesale(t *testing.T) {
	t.Parallel()
	store := plannerout.NewFilePlanStore(t.TempDir())
	svc := service.NewPlanService(subjects, rotation, store)
	uc := usecase.NewInteractor(svc, &recordingJournal{}, fixedClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local)})

	first, err := uc.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(first))
	}
	second, err := uc.Generate(context.Background())
	if err != nil {
		t.Fatalf("regenerate plan: %v", err)
	}
	stored, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if len(stored) != len(second) {
		t.Fatalf("regeneration must replace the stored plan")
	}
	for i := range second {
		if stored[i] != second[i] {
			t.Fatalf("stored slot %d differs: %+v vs %+v", i, stored[i], second[i])
		}
	}
}

func TestCommitTodayAppendsZeroDurationEntryWithoutTouchingPlan(t *testing.T) {
	t.Parallel()
	store := plannerout.NewFilePlanStore(t.TempDir())
	svc := service.NewPlanService(subjects, rotation, store)
	journal := &recordingJournal{}
	uc := usecase.NewInteractor(svc, journal, fixedClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local)})

	plan, err := uc.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}

	out, err := uc.CommitToday(context.Background(), 1)
	if err != nil {
		t.Fatalf("commit slot: %v", err)
	}
	if out.Date != "2026-01-10" {
		t.Fatalf("expected today's date, got %s", out.Date)
	}
	if len(journal.added) != 1 {
		t.Fatalf("expected exactly one journal add")
	}
	added := journal.added[0]
	if added.DurationMinutes != 0 {
		t.Fatalf("committed slot must be zero-duration, got %d", added.DurationMinutes)
	}
	if added.Subtest != "PPU" || added.Notes == "" {
		t.Fatalf("entry must reference the slot: %+v", added)
	}

	after, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if len(after) != len(plan) {
		t.Fatalf("commit must not mutate the plan")
	}
	for i := range plan {
		if after[i] != plan[i] {
			t.Fatalf("plan slot %d changed after commit", i)
		}
	}
}

func TestCommitTodayWithoutPlanFails(t *testing.T) {
	t.Parallel()
	store := plannerout.NewFilePlanStore(t.TempDir())
	uc := usecase.NewInteractor(service.NewPlanService(subjects, rotation, store), &recordingJournal{}, fixedClock{now: time.Now()})
	if _, err := uc.CommitToday(context.Background(), 0); !errors.Is(err, apperrors.ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan, got %v", err)
	}
}
