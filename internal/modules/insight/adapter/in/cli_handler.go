package in

import (
	"context"

	"studylog/internal/modules/insight/dto"
	insightin "studylog/internal/modules/insight/port/in"
)

type CLIHandler struct {
	usecase insightin.Usecase
}

func NewCLIHandler(usecase insightin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Totals(ctx context.Context) (dto.TotalsOutput, error) {
	return h.usecase.Totals(ctx)
}

func (h CLIHandler) DailyTrend(ctx context.Context) ([]dto.TrendPoint, error) {
	return h.usecase.DailyTrend(ctx)
}

func (h CLIHandler) ScoreTrend(ctx context.Context) ([]dto.ScorePoint, error) {
	return h.usecase.ScoreTrend(ctx)
}
