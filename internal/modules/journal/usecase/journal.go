package usecase

import (
	"context"
	"errors"

	"studylog/internal/modules/journal/domain"
	"studylog/internal/modules/journal/dto"
	journalin "studylog/internal/modules/journal/port/in"
	"studylog/internal/modules/journal/service"
	apperrors "studylog/internal/platform/errors"
)

type Interactor struct {
	svc *service.JournalService
}

func NewInteractor(svc *service.JournalService) journalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.Entry, error) {
	entry, err := i.svc.Add(ctx, domain.Entry{
		Date:            input.Date,
		Subtest:         input.Subtest,
		MaterialType:    input.MaterialType,
		Topic:           input.Topic,
		DurationMinutes: input.DurationMinutes,
		Score:           input.Score,
		ResourceURL:     input.ResourceURL,
		Notes:           input.Notes,
	})
	if err != nil {
		return dto.Entry{}, err
	}
	return toDTO(entry), nil
}

// Update treats a missing id as a soft no-op: the record may have
// been removed by another action within the same session.
func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error) {
	entry, err := i.svc.Update(ctx, input.ID, domain.Patch{
		Date:            input.Patch.Date,
		Subtest:         input.Patch.Subtest,
		MaterialType:    input.Patch.MaterialType,
		Topic:           input.Patch.Topic,
		DurationMinutes: input.Patch.DurationMinutes,
		Score:           input.Patch.Score,
		ClearScore:      input.Patch.ClearScore,
		ResourceURL:     input.Patch.ResourceURL,
		Notes:           input.Patch.Notes,
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		return dto.UpdateOutput{Found: false}, nil
	}
	if err != nil {
		return dto.UpdateOutput{}, err
	}
	return dto.UpdateOutput{Found: true, Entry: toDTO(entry)}, nil
}

func (i *Interactor) Remove(ctx context.Context, id string) (dto.RemoveOutput, error) {
	err := i.svc.Remove(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return dto.RemoveOutput{Found: false}, nil
	}
	if err != nil {
		return dto.RemoveOutput{}, err
	}
	return dto.RemoveOutput{Found: true}, nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.Entry, error) {
	filtered := domain.ApplyFilter(i.svc.List(ctx), domain.Filter{
		Query:    input.Query,
		Subtest:  input.Subtest,
		Material: input.Material,
		From:     input.From,
		To:       input.To,
	})
	out := make([]dto.Entry, 0, len(filtered))
	for _, e := range filtered {
		out = append(out, toDTO(e))
	}
	return out, nil
}

func (i *Interactor) ReplaceAll(ctx context.Context, entries []dto.Entry) error {
	installed := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		installed = append(installed, fromDTO(e))
	}
	i.svc.ReplaceAll(ctx, installed)
	return nil
}

func (i *Interactor) Recent(ctx context.Context, limit int) ([]dto.Entry, error) {
	entries, err := i.svc.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	i.svc.Reindex(ctx)
	return nil
}

func toDTO(e domain.Entry) dto.Entry {
	return dto.Entry{
		ID:              e.ID,
		Date:            e.Date,
		Subtest:         e.Subtest,
		MaterialType:    e.MaterialType,
		Topic:           e.Topic,
		DurationMinutes: e.DurationMinutes,
		Score:           e.Score,
		ResourceURL:     e.ResourceURL,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func fromDTO(e dto.Entry) domain.Entry {
	return domain.Entry{
		ID:              e.ID,
		Date:            e.Date,
		Subtest:         e.Subtest,
		MaterialType:    e.MaterialType,
		Topic:           e.Topic,
		DurationMinutes: e.DurationMinutes,
		Score:           e.Score,
		ResourceURL:     e.ResourceURL,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
