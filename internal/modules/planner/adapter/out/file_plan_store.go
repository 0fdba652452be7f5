package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"studylog/internal/modules/planner/domain"
	plannerout "studylog/internal/modules/planner/port/out"
)

type FilePlanStore struct {
	path string
}

func NewFilePlanStore(dataPath string) plannerout.PlanStore {
	return &FilePlanStore{path: filepath.Join(dataPath, ".studylog", "weekly-plan.json")}
}

func (s *FilePlanStore) Load(_ context.Context) ([]domain.Slot, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read weekly plan: %w", err)
	}
	var plan []domain.Slot
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("decode weekly plan: %w", err)
	}
	return plan, nil
}

func (s *FilePlanStore) Save(_ context.Context, plan []domain.Slot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if plan == nil {
		plan = []domain.Slot{}
	}
	payload, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal weekly plan: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write weekly plan: %w", err)
	}
	return nil
}

func (s *FilePlanStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear weekly plan: %w", err)
	}
	return nil
}
