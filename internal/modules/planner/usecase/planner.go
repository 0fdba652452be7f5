package usecase

import (
	"context"
	"fmt"

	journaldto "studylog/internal/modules/journal/dto"
	journalin "studylog/internal/modules/journal/port/in"
	"studylog/internal/modules/planner/domain"
	"studylog/internal/modules/planner/dto"
	plannerin "studylog/internal/modules/planner/port/in"
	"studylog/internal/modules/planner/service"
	"studylog/internal/platform/clock"
	"studylog/internal/platform/dates"
	apperrors "studylog/internal/platform/errors"
)

type Interactor struct {
	svc     *service.PlanService
	journal journalin.Usecase
	clock   clock.Clock
}

func NewInteractor(svc *service.PlanService, journal journalin.Usecase, clock clock.Clock) plannerin.Usecase {
	return &Interactor{svc: svc, journal: journal, clock: clock}
}

func (i *Interactor) Generate(ctx context.Context) ([]dto.Slot, error) {
	plan, err := i.svc.Generate(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(plan), nil
}

func (i *Interactor) Get(ctx context.Context) ([]dto.Slot, error) {
	plan, err := i.svc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(plan), nil
}

func (i *Interactor) Replace(ctx context.Context, plan []dto.Slot) error {
	slots := make([]domain.Slot, 0, len(plan))
	for _, s := range plan {
		slots = append(slots, domain.Slot{DayIndex: s.DayIndex, Subtest: s.Subtest, MaterialType: s.MaterialType, Suggestion: s.Suggestion})
	}
	return i.svc.Replace(ctx, slots)
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

// CommitToday turns one slot into a zero-duration entry dated today,
// through the ordinary journal add. The plan itself is not touched.
func (i *Interactor) CommitToday(ctx context.Context, dayIndex int) (dto.CommitOutput, error) {
	plan, err := i.svc.Get(ctx)
	if err != nil {
		return dto.CommitOutput{}, err
	}
	if len(plan) == 0 {
		return dto.CommitOutput{}, apperrors.ErrNoPlan
	}
	var slot *domain.Slot
	for idx := range plan {
		if plan[idx].DayIndex == dayIndex {
			slot = &plan[idx]
			break
		}
	}
	if slot == nil {
		return dto.CommitOutput{}, fmt.Errorf("no plan slot for day %d: %w", dayIndex, apperrors.ErrNotFound)
	}
	today := dates.DayKey(i.clock.Now())
	entry, err := i.journal.Add(ctx, journaldto.AddInput{
		Date:            today,
		Subtest:         slot.Subtest,
		MaterialType:    slot.MaterialType,
		Topic:           fmt.Sprintf("Weekly plan: %s", slot.Subtest),
		DurationMinutes: 0,
		Notes:           slot.Suggestion,
	})
	if err != nil {
		return dto.CommitOutput{}, err
	}
	return dto.CommitOutput{EntryID: entry.ID, Date: entry.Date}, nil
}

func toDTOs(plan []domain.Slot) []dto.Slot {
	out := make([]dto.Slot, 0, len(plan))
	for _, s := range plan {
		out = append(out, dto.Slot{DayIndex: s.DayIndex, Subtest: s.Subtest, MaterialType: s.MaterialType, Suggestion: s.Suggestion})
	}
	return out
}
