package domain_test

import (
	"testing"
	"time"

	"studylog/internal/modules/insight/domain"
	"studylog/internal/platform/dates"
)

func day(key string) time.Time {
	t, err := dates.ParseDayKey(key)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreakCountsBackFromToday(t *testing.T) {
	t.Parallel()
	today := day("2026-01-10")
	active := map[string]struct{}{
		"2026-01-10": {},
		"2026-01-09": {},
		"2026-01-08": {},
		// 2026-01-07 missing: streak breaks here.
		"2026-01-06": {},
	}
	if got := domain.Streak(active, today); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestStreakIsZeroWhenTodayInactive(t *testing.T) {
	t.Parallel()
	today := day("2026-01-10")
	active := map[string]struct{}{}
	for _, key := range []string{"2026-01-09", "2026-01-08", "2026-01-07", "2026-01-06", "2026-01-05"} {
		active[key] = struct{}{}
	}
	if got := domain.Streak(active, today); got != 0 {
		t.Fatalf("today has no session, expected streak 0, got %d", got)
	}
}

func TestConsistencyZeroElapsedNeverDivides(t *testing.T) {
	t.Parallel()
	if got := domain.Consistency(5, 0); got != 0 {
		t.Fatalf("expected 0 for zero elapsed days, got %d", got)
	}
}

func TestConsistencyRoundsHalfUp(t *testing.T) {
	t.Parallel()
	// 1/8 = 12.5% rounds to 13.
	if got := domain.Consistency(1, 8); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
}

func TestConsistencyMayExceedHundredForBackdatedEntries(t *testing.T) {
	t.Parallel()
	if got := domain.Consistency(6, 4); got != 150 {
		t.Fatalf("backdated activity must stay visible, expected 150, got %d", got)
	}
}

func TestTimelineSameStartAndTargetIsWellDefined(t *testing.T) {
	t.Parallel()
	at := day("2026-04-24")
	timeline := domain.ComputeTimeline(at, at, at)
	if timeline.TotalSpanDays != 1 {
		t.Fatalf("span must floor at 1, got %d", timeline.TotalSpanDays)
	}
	if timeline.DaysLeft != 0 {
		t.Fatalf("expected 0 days left on target date, got %d", timeline.DaysLeft)
	}
}

func TestTimelineAfterTargetStaysAtZeroDaysLeft(t *testing.T) {
	t.Parallel()
	timeline := domain.ComputeTimeline(day("2026-01-01"), day("2026-04-24"), day("2026-06-01"))
	if timeline.DaysLeft != 0 {
		t.Fatalf("days left must never go negative, got %d", timeline.DaysLeft)
	}
	if timeline.ProgressPct != 100 {
		t.Fatalf("expected 100%% past the target, got %d", timeline.ProgressPct)
	}
	if timeline.ElapsedDays != timeline.TotalSpanDays {
		t.Fatalf("elapsed must clamp to the span")
	}
}

func TestTimelineMidSpan(t *testing.T) {
	t.Parallel()
	timeline := domain.ComputeTimeline(day("2026-01-01"), day("2026-01-11"), day("2026-01-06"))
	if timeline.TotalSpanDays != 10 || timeline.ElapsedDays != 5 {
		t.Fatalf("expected 5/10 elapsed, got %d/%d", timeline.ElapsedDays, timeline.TotalSpanDays)
	}
	if timeline.ProgressPct != 50 {
		t.Fatalf("expected 50%%, got %d", timeline.ProgressPct)
	}
	if timeline.DaysLeft != 5 {
		t.Fatalf("expected 5 days left, got %d", timeline.DaysLeft)
	}
}

func TestTotalsByCategorySumMatchesValidEntries(t *testing.T) {
	t.Parallel()
	subtests := []string{"Penalaran Umum", "Penalaran Matematika", "Literasi Bahasa Inggris"}
	entries := []domain.Entry{
		{Date: "2026-01-01", Subtest: "Penalaran Umum", DurationMinutes: 60},
		{Date: "2026-01-02", Subtest: "Penalaran Umum", DurationMinutes: 30},
		{Date: "2026-01-02", Subtest: "Penalaran Matematika", DurationMinutes: 45},
		{Date: "2026-01-03", Subtest: "Sejarah", DurationMinutes: 999}, // unknown bucket
	}
	totals := domain.TotalsByCategory(entries, subtests, func(e domain.Entry) string { return e.Subtest })
	if len(totals) != 3 {
		t.Fatalf("every configured category must appear, got %d", len(totals))
	}
	sum := 0
	for _, c := range totals {
		sum += c.Minutes
	}
	if sum != 135 {
		t.Fatalf("unknown categories must not inflate valid buckets, expected 135, got %d", sum)
	}
	if totals[2].Name != "Literasi Bahasa Inggris" || totals[2].Minutes != 0 {
		t.Fatalf("untouched categories report 0, not absent: %+v", totals[2])
	}
}

func TestDailyTrendOrdersAscendingWithoutInterpolation(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Date: "2026-01-02", DurationMinutes: 30},
		{Date: "2026-01-01", DurationMinutes: 40},
		{Date: "2026-01-01", DurationMinutes: 20},
		// 2026-01-03 has no sessions and must not appear.
		{Date: "2026-01-04", DurationMinutes: 10},
	}
	trend := domain.DailyTrend(entries)
	want := []domain.TrendPoint{
		{Date: "2026-01-01", Minutes: 60},
		{Date: "2026-01-02", Minutes: 30},
		{Date: "2026-01-04", Minutes: 10},
	}
	if len(trend) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(trend))
	}
	for i := range want {
		if trend[i] != want[i] {
			t.Fatalf("point %d: expected %+v, got %+v", i, want[i], trend[i])
		}
	}
}

func TestScoreTrendFiltersByMarkerAndKeepsDuplicates(t *testing.T) {
	t.Parallel()
	s1, s2, s3 := 540.0, 575.0, 590.0
	entries := []domain.Entry{
		{Date: "2026-01-05", MaterialType: "Try Out/Mini Tryout", Score: &s2},
		{Date: "2026-01-02", MaterialType: "TRY Out/Mini Tryout", Score: &s1},
		{Date: "2026-01-05", MaterialType: "Try Out/Mini Tryout", Score: &s3},
		{Date: "2026-01-03", MaterialType: "Latihan Soal", Score: &s1},  // wrong material
		{Date: "2026-01-04", MaterialType: "Try Out/Mini Tryout"},      // no score
	}
	trend := domain.ScoreTrend(entries, "try")
	if len(trend) != 3 {
		t.Fatalf("expected 3 points, got %d", len(trend))
	}
	if trend[0].Date != "2026-01-02" || trend[0].Score != 540 {
		t.Fatalf("expected ascending dates, got %+v", trend)
	}
	if trend[1].Date != "2026-01-05" || trend[2].Date != "2026-01-05" {
		t.Fatalf("same-day scores must both appear: %+v", trend)
	}
}

func TestScenarioFromTwoDayLog(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Date: "2026-01-01", Subtest: "A", DurationMinutes: 60},
		{Date: "2026-01-02", Subtest: "A", DurationMinutes: 30},
	}
	timeline := domain.ComputeTimeline(day("2026-01-01"), day("2026-04-24"), day("2026-01-02"))
	if timeline.ElapsedDays != 1 {
		t.Fatalf("expected elapsed 1, got %d", timeline.ElapsedDays)
	}
	active := domain.ActiveDays(entries)
	if len(active) != 2 {
		t.Fatalf("expected 2 active days, got %d", len(active))
	}
	if got := domain.Consistency(len(active), timeline.ElapsedDays); got != 200 {
		t.Fatalf("two active days over one elapsed day reads 200%%, got %d", got)
	}
	trend := domain.DailyTrend(entries)
	if trend[0].Minutes != 60 || trend[1].Minutes != 30 {
		t.Fatalf("unexpected trend: %+v", trend)
	}
}
