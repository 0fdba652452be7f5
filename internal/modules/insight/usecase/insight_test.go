package usecase_test

import (
	"context"
	"testing"
	"time"

	insightsvc "studylog/internal/modules/insight/service"
	"studylog/internal/modules/insight/usecase"
	journaldto "studylog/internal/modules/journal/dto"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeJournal struct {
	entries []journaldto.Entry
}

func (f *fakeJournal) Add(context.Context, journaldto.AddInput) (journaldto.Entry, error) {
	return journaldto.Entry{}, nil
}
func (f *fakeJournal) Update(context.Context, journaldto.UpdateInput) (journaldto.UpdateOutput, error) {
	return journaldto.UpdateOutput{}, nil
}
func (f *fakeJournal) Remove(context.Context, string) (journaldto.RemoveOutput, error) {
	return journaldto.RemoveOutput{}, nil
}
func (f *fakeJournal) List(context.Context, journaldto.ListInput) ([]journaldto.Entry, error) {
	return f.entries, nil
}
func (f *fakeJournal) ReplaceAll(_ context.Context, entries []journaldto.Entry) error {
	f.entries = entries
	return nil
}
func (f *fakeJournal) Recent(context.Context, int) ([]journaldto.Entry, error) { return nil, nil }
func (f *fakeJournal) Reindex(context.Context) error                          { return nil }

func settings() insightsvc.Settings {
	return insightsvc.Settings{
		StartDate:   "2026-01-01",
		TargetDate:  "2026-01-11",
		Subtests:    []string{"Penalaran Umum", "Penalaran Matematika"},
		Materials:   []string{"Latihan Soal", "Try Out/Mini Tryout"},
		ScoreMarker: "try",
	}
}

func TestOverviewDerivesEverythingFromSnapshot(t *testing.T) {
	t.Parallel()
	score := 555.0
	journal := &fakeJournal{entries: []journaldto.Entry{
		{Date: "2026-01-06", Subtest: "Penalaran Umum", MaterialType: "Latihan Soal", DurationMinutes: 60},
		{Date: "2026-01-05", Subtest: "Penalaran Matematika", MaterialType: "Try Out/Mini Tryout", DurationMinutes: 90, Score: &score},
	}}
	clk := fixedClock{now: time.Date(2026, 1, 6, 20, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(insightsvc.NewInsightService(clk, settings()), journal)

	overview, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.Today != "2026-01-06" {
		t.Fatalf("expected today 2026-01-06, got %s", overview.Today)
	}
	if overview.ElapsedDays != 5 || overview.TotalSpanDays != 10 || overview.ProgressPct != 50 {
		t.Fatalf("unexpected timeline: %+v", overview)
	}
	if overview.DaysLeft != 5 {
		t.Fatalf("expected 5 days left, got %d", overview.DaysLeft)
	}
	if overview.StreakDays != 2 {
		t.Fatalf("active on today and yesterday, expected streak 2, got %d", overview.StreakDays)
	}
	if overview.ConsistencyPct != 40 {
		t.Fatalf("2 active of 5 elapsed days, expected 40, got %d", overview.ConsistencyPct)
	}
	if overview.TotalMinutes != 150 || overview.EntryCount != 2 || overview.ActiveDays != 2 {
		t.Fatalf("unexpected summary: %+v", overview)
	}
}

func TestTotalsZeroFillEveryConfiguredCategory(t *testing.T) {
	t.Parallel()
	journal := &fakeJournal{entries: []journaldto.Entry{
		{Date: "2026-01-05", Subtest: "Penalaran Umum", MaterialType: "Latihan Soal", DurationMinutes: 45},
	}}
	clk := fixedClock{now: time.Date(2026, 1, 6, 9, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(insightsvc.NewInsightService(clk, settings()), journal)

	totals, err := uc.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals.BySubtest) != 2 || len(totals.ByMaterial) != 2 {
		t.Fatalf("expected zero-filled category lists: %+v", totals)
	}
	if totals.BySubtest[0].Minutes != 45 || totals.BySubtest[1].Minutes != 0 {
		t.Fatalf("unexpected subtest totals: %+v", totals.BySubtest)
	}
}

func TestMalformedConfiguredDatesDegradeToZeros(t *testing.T) {
	t.Parallel()
	bad := settings()
	bad.StartDate = "soon"
	bad.TargetDate = "later"
	clk := fixedClock{now: time.Date(2026, 1, 6, 9, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(insightsvc.NewInsightService(clk, bad), &fakeJournal{})

	overview, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("analytics must never crash on bad dates: %v", err)
	}
	if overview.DaysLeft != 0 || overview.ElapsedDays != 0 {
		t.Fatalf("expected zeroed timeline, got %+v", overview)
	}
}

func TestScoreTrendComesOutAscending(t *testing.T) {
	t.Parallel()
	s1, s2 := 500.0, 570.0
	journal := &fakeJournal{entries: []journaldto.Entry{
		{Date: "2026-01-06", MaterialType: "Try Out/Mini Tryout", Score: &s2},
		{Date: "2026-01-02", MaterialType: "Try Out/Mini Tryout", Score: &s1},
	}}
	clk := fixedClock{now: time.Date(2026, 1, 6, 9, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(insightsvc.NewInsightService(clk, settings()), journal)

	trend, err := uc.ScoreTrend(context.Background())
	if err != nil {
		t.Fatalf("score trend: %v", err)
	}
	if len(trend) != 2 || trend[0].Score != 500 || trend[1].Score != 570 {
		t.Fatalf("unexpected trend: %+v", trend)
	}
}
