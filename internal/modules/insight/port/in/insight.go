package in

import (
	"context"

	"studylog/internal/modules/insight/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	Totals(ctx context.Context) (dto.TotalsOutput, error)
	DailyTrend(ctx context.Context) ([]dto.TrendPoint, error)
	ScoreTrend(ctx context.Context) ([]dto.ScorePoint, error)
}
