package domain

import (
	"math"
	"sort"
	"strings"
	"time"

	"studylog/internal/platform/dates"
)

// Entry is the projection of a log record the analytics need. The
// insight module never sees journal identities or timestamps.
type Entry struct {
	Date            string
	Subtest         string
	MaterialType    string
	DurationMinutes int
	Score           *float64
}

// Timeline positions today on the start→target span.
type Timeline struct {
	TotalSpanDays int
	ElapsedDays   int
	ProgressPct   int
	DaysLeft      int
}

// ComputeTimeline derives the timeline for an explicit today. The
// span floors at one day so a start date on (or after) the target
// never divides by zero.
func ComputeTimeline(start, target, today time.Time) Timeline {
	span := dates.DaysBetween(start, target)
	if span < 1 {
		span = 1
	}
	elapsed := dates.DaysBetween(start, today)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > span {
		elapsed = span
	}
	daysLeft := dates.DaysBetween(today, target)
	if daysLeft < 0 {
		daysLeft = 0
	}
	return Timeline{
		TotalSpanDays: span,
		ElapsedDays:   elapsed,
		ProgressPct:   dates.ClampPercent(float64(elapsed) / float64(span) * 100),
		DaysLeft:      daysLeft,
	}
}

// ActiveDays is the set of distinct day keys with at least one entry.
func ActiveDays(entries []Entry) map[string]struct{} {
	out := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		out[e.Date] = struct{}{}
	}
	return out
}

// Consistency is the share of elapsed days that were active, rounded
// half-up. Zero elapsed days reads 0 rather than dividing. The value
// is deliberately not clamped: backdated entries before the start
// date can push it past 100, and hiding that would hide the data.
func Consistency(activeDays, elapsedDays int) int {
	if elapsedDays <= 0 {
		return 0
	}
	return int(math.Round(float64(activeDays) / float64(elapsedDays) * 100))
}

// Streak counts consecutive active days ending today. An inactive
// today means 0 regardless of yesterday; there is no grace day.
func Streak(active map[string]struct{}, today time.Time) int {
	streak := 0
	cur := today
	for {
		if _, ok := active[dates.DayKey(cur)]; !ok {
			return streak
		}
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
}

// CategoryTotal is the minute total for one configured category.
type CategoryTotal struct {
	Name    string
	Minutes int
}

// TotalsByCategory sums minutes per configured category, in the
// configured order, reporting 0 for untouched categories. Entries in
// unknown categories never inflate a valid bucket.
func TotalsByCategory(entries []Entry, categories []string, key func(Entry) string) []CategoryTotal {
	index := make(map[string]int, len(categories))
	out := make([]CategoryTotal, len(categories))
	for i, name := range categories {
		index[name] = i
		out[i] = CategoryTotal{Name: name}
	}
	for _, e := range entries {
		if i, ok := index[key(e)]; ok {
			out[i].Minutes += e.DurationMinutes
		}
	}
	return out
}

// TrendPoint is one day's minute total.
type TrendPoint struct {
	Date    string
	Minutes int
}

// DailyTrend groups entries by day and sums minutes, ascending by
// date. Days without entries are not interpolated.
func DailyTrend(entries []Entry) []TrendPoint {
	byDay := map[string]int{}
	for _, e := range entries {
		byDay[e.Date] += e.DurationMinutes
	}
	out := make([]TrendPoint, 0, len(byDay))
	for day, minutes := range byDay {
		out = append(out, TrendPoint{Date: day, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ScorePoint is one recorded practice-test score.
type ScorePoint struct {
	Date  string
	Score float64
}

// ScoreTrend collects scores from entries whose material type matches
// the marker term (case-insensitive substring), ascending by date.
// Same-day scores all appear; nothing is merged.
func ScoreTrend(entries []Entry, marker string) []ScorePoint {
	marker = strings.ToLower(marker)
	var out []ScorePoint
	for _, e := range entries {
		if e.Score == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(e.MaterialType), marker) {
			continue
		}
		out = append(out, ScorePoint{Date: e.Date, Score: *e.Score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Summary holds the aggregate badges shown on the dashboard.
type Summary struct {
	TotalMinutes int
	EntryCount   int
	ActiveDays   int
}

func Summarize(entries []Entry) Summary {
	total := 0
	for _, e := range entries {
		total += e.DurationMinutes
	}
	return Summary{
		TotalMinutes: total,
		EntryCount:   len(entries),
		ActiveDays:   len(ActiveDays(entries)),
	}
}
