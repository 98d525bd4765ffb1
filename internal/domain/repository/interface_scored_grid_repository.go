package repository

import (
	"context"

	"corridor-app/internal/domain/model"
)

// ScoredGridRepository loads the scored suitability grid produced by the
// upstream scoring stage. Read-only collaborator.
type ScoredGridRepository interface {
	// LoadScoredGrid returns every scored cell with its polygon geometry
	// and final score.
	LoadScoredGrid(ctx context.Context) ([]model.GridCell, error)
}
