package service

import (
	"time"

	"studylog/internal/modules/insight/domain"
	"studylog/internal/platform/clock"
	"studylog/internal/platform/dates"
)

// Settings are the configured constants the analytics derive against.
type Settings struct {
	StartDate   string
	TargetDate  string
	Subtests    []string
	Materials   []string
	ScoreMarker string
}

// InsightService recomputes every metric from a full log snapshot.
// Nothing is cached: the log is one person's, so full recomputation
// per read is cheap and keeps invalidation logic out entirely.
type InsightService struct {
	clock    clock.Clock
	settings Settings
}

func NewInsightService(clock clock.Clock, settings Settings) *InsightService {
	return &InsightService{clock: clock, settings: settings}
}

// Timeline resolves start/target against today, taken once per call.
// A malformed start date degrades to today, a malformed target to the
// start, so a bad config reads as zeros instead of failing.
func (s *InsightService) Timeline() (domain.Timeline, time.Time) {
	today := s.clock.Now()
	start, err := dates.ParseDayKey(s.settings.StartDate)
	if err != nil {
		start = today
	}
	target, err := dates.ParseDayKey(s.settings.TargetDate)
	if err != nil {
		target = start
	}
	return domain.ComputeTimeline(start, target, today), today
}

func (s *InsightService) Consistency(entries []domain.Entry) int {
	timeline, _ := s.Timeline()
	return domain.Consistency(len(domain.ActiveDays(entries)), timeline.ElapsedDays)
}

func (s *InsightService) Streak(entries []domain.Entry) int {
	return domain.Streak(domain.ActiveDays(entries), s.clock.Now())
}

func (s *InsightService) TotalsBySubtest(entries []domain.Entry) []domain.CategoryTotal {
	return domain.TotalsByCategory(entries, s.settings.Subtests, func(e domain.Entry) string { return e.Subtest })
}

func (s *InsightService) TotalsByMaterial(entries []domain.Entry) []domain.CategoryTotal {
	return domain.TotalsByCategory(entries, s.settings.Materials, func(e domain.Entry) string { return e.MaterialType })
}

func (s *InsightService) DailyTrend(entries []domain.Entry) []domain.TrendPoint {
	return domain.DailyTrend(entries)
}

func (s *InsightService) ScoreTrend(entries []domain.Entry) []domain.ScorePoint {
	return domain.ScoreTrend(entries, s.settings.ScoreMarker)
}

func (s *InsightService) Summarize(entries []domain.Entry) domain.Summary {
	return domain.Summarize(entries)
}

func (s *InsightService) Settings() Settings {
	return s.settings
}
