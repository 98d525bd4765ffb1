package repository

import (
	"context"

	"corridor-app/internal/domain/model"
)

// SiteRepository loads the point and line datasets that feed source and
// hub selection. Read-only collaborators.
type SiteRepository interface {
	LoadStrategicZones(ctx context.Context) ([]model.StrategicZone, error)
	LoadGenerationSites(ctx context.Context) ([]model.GenerationSite, error)
	LoadLoadCenters(ctx context.Context) ([]model.LoadCenter, error)

	// LoadTransmissionLines returns existing lines for the downstream
	// infrastructure classifier; an empty slice skips classification.
	LoadTransmissionLines(ctx context.Context) ([]model.TransmissionLine, error)
}
