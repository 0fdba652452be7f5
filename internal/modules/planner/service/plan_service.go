package service

import (
	"context"

	"studylog/internal/modules/planner/domain"
	plannerout "studylog/internal/modules/planner/port/out"
)

type PlanService struct {
	subjects []string
	rotation []string
	store    plannerout.PlanStore
}

func NewPlanService(subjects, rotation []string, store plannerout.PlanStore) *PlanService {
	return &PlanService{subjects: subjects, rotation: rotation, store: store}
}

// Generate replaces any stored plan with a fresh rotation.
func (s *PlanService) Generate(ctx context.Context) ([]domain.Slot, error) {
	plan := domain.Generate(s.subjects, s.rotation)
	if err := s.store.Save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) Get(ctx context.Context) ([]domain.Slot, error) {
	return s.store.Load(ctx)
}

func (s *PlanService) Replace(ctx context.Context, plan []domain.Slot) error {
	return s.store.Save(ctx, plan)
}

func (s *PlanService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
