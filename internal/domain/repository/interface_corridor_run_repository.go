package repository

import (
	"context"

	"corridor-app/internal/domain/model"
)

// CorridorRunRepository persists completed extraction runs so their
// corridor sets can be fetched later by run id.
type CorridorRunRepository interface {
	SaveRun(ctx context.Context, run *model.CorridorRun) error
	GetRun(ctx context.Context, runID string) (*model.CorridorRun, error)
}
