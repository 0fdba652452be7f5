package in

import (
	"context"

	"studylog/internal/modules/journal/dto"
	journalin "studylog/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.Entry, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, id string, patch dto.PatchInput) (dto.UpdateOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{ID: id, Patch: patch})
}

func (h CLIHandler) Remove(ctx context.Context, id string) (dto.RemoveOutput, error) {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, filter dto.ListInput) ([]dto.Entry, error) {
	return h.usecase.List(ctx, filter)
}

func (h CLIHandler) Recent(ctx context.Context, limit int) ([]dto.Entry, error) {
	return h.usecase.Recent(ctx, limit)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
