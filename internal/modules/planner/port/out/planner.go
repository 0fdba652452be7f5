package out

import (
	"context"

	"studylog/internal/modules/planner/domain"
)

// PlanStore persists the current weekly plan. Load on an empty store
// returns nil without error.
type PlanStore interface {
	Load(ctx context.Context) ([]domain.Slot, error)
	Save(ctx context.Context, plan []domain.Slot) error
	Clear(ctx context.Context) error
}
