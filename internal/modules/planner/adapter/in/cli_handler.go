package in

import (
	"context"

	"studylog/internal/modules/planner/dto"
	plannerin "studylog/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context) ([]dto.Slot, error) {
	return h.usecase.Generate(ctx)
}

func (h CLIHandler) Get(ctx context.Context) ([]dto.Slot, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) CommitToday(ctx context.Context, dayIndex int) (dto.CommitOutput, error) {
	return h.usecase.CommitToday(ctx, dayIndex)
}
