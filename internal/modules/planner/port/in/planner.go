package in

import (
	"context"

	"studylog/internal/modules/planner/dto"
)

type Usecase interface {
	Generate(ctx context.Context) ([]dto.Slot, error)
	Get(ctx context.Context) ([]dto.Slot, error)
	Replace(ctx context.Context, plan []dto.Slot) error
	Clear(ctx context.Context) error
	CommitToday(ctx context.Context, dayIndex int) (dto.CommitOutput, error)
}
