package in

import (
	"context"

	"studylog/internal/modules/journal/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.Entry, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error)
	Remove(ctx context.Context, id string) (dto.RemoveOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.Entry, error)
	ReplaceAll(ctx context.Context, entries []dto.Entry) error
	Recent(ctx context.Context, limit int) ([]dto.Entry, error)
	Reindex(ctx context.Context) error
}
