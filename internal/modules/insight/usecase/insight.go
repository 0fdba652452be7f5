package usecase

import (
	"context"

	"studylog/internal/modules/insight/domain"
	"studylog/internal/modules/insight/dto"
	insightin "studylog/internal/modules/insight/port/in"
	"studylog/internal/modules/insight/service"
	journaldto "studylog/internal/modules/journal/dto"
	journalin "studylog/internal/modules/journal/port/in"
	"studylog/internal/platform/dates"
)

type Interactor struct {
	svc     *service.InsightService
	journal journalin.Usecase
}

func NewInteractor(svc *service.InsightService, journal journalin.Usecase) insightin.Usecase {
	return &Interactor{svc: svc, journal: journal}
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	entries, err := i.snapshot(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	timeline, today := i.svc.Timeline()
	summary := i.svc.Summarize(entries)
	return dto.OverviewOutput{
		TargetDate:     i.svc.Settings().TargetDate,
		StartDate:      i.svc.Settings().StartDate,
		Today:          dates.DayKey(today),
		DaysLeft:       timeline.DaysLeft,
		ElapsedDays:    timeline.ElapsedDays,
		TotalSpanDays:  timeline.TotalSpanDays,
		ProgressPct:    timeline.ProgressPct,
		ConsistencyPct: domain.Consistency(summary.ActiveDays, timeline.ElapsedDays),
		StreakDays:     domain.Streak(domain.ActiveDays(entries), today),
		TotalMinutes:   summary.TotalMinutes,
		EntryCount:     summary.EntryCount,
		ActiveDays:     summary.ActiveDays,
	}, nil
}

func (i *Interactor) Totals(ctx context.Context) (dto.TotalsOutput, error) {
	entries, err := i.snapshot(ctx)
	if err != nil {
		return dto.TotalsOutput{}, err
	}
	return dto.TotalsOutput{
		BySubtest:  toCategoryDTOs(i.svc.TotalsBySubtest(entries)),
		ByMaterial: toCategoryDTOs(i.svc.TotalsByMaterial(entries)),
	}, nil
}

func (i *Interactor) DailyTrend(ctx context.Context) ([]dto.TrendPoint, error) {
	entries, err := i.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	points := i.svc.DailyTrend(entries)
	out := make([]dto.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TrendPoint{Date: p.Date, Minutes: p.Minutes})
	}
	return out, nil
}

func (i *Interactor) ScoreTrend(ctx context.Context) ([]dto.ScorePoint, error) {
	entries, err := i.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	points := i.svc.ScoreTrend(entries)
	out := make([]dto.ScorePoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ScorePoint{Date: p.Date, Score: p.Score})
	}
	return out, nil
}

func (i *Interactor) snapshot(ctx context.Context) ([]domain.Entry, error) {
	entries, err := i.journal.List(ctx, journaldto.ListInput{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Entry{
			Date:            e.Date,
			Subtest:         e.Subtest,
			MaterialType:    e.MaterialType,
			DurationMinutes: e.DurationMinutes,
			Score:           e.Score,
		})
	}
	return out, nil
}

func toCategoryDTOs(totals []domain.CategoryTotal) []dto.CategoryTotal {
	out := make([]dto.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.CategoryTotal{Name: t.Name, Minutes: t.Minutes})
	}
	return out
}
