package repository

import (
	"context"
	"fmt"
	"sync"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"
)

// MemoryCorridorRunRepository keeps runs in process memory. Used when no
// Firestore project is configured and by tests.
type MemoryCorridorRunRepository struct {
	mu   sync.RWMutex
	runs map[string]*model.CorridorRun
}

func NewMemoryCorridorRunRepository() repository.CorridorRunRepository {
	return &MemoryCorridorRunRepository{runs: make(map[string]*model.CorridorRun)}
}

func (r *MemoryCorridorRunRepository) SaveRun(ctx context.Context, run *model.CorridorRun) error {
	if run == nil || run.RunID == "" {
		return fmt.Errorf("corridor run is missing a run id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *run
	r.runs[run.RunID] = &copied
	return nil
}

func (r *MemoryCorridorRunRepository) GetRun(ctx context.Context, runID string) (*model.CorridorRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil, fmt.Errorf("corridor run %s not found", runID)
	}
	copied := *run
	return &copied, nil
}
