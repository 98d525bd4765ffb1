package repository

import (
	"context"
	"fmt"
	"log"
	"os"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"

	"github.com/paulmach/orb/geojson"
)

// GeoJSONGridRepository reads the scored grid from a GeoJSON file, the
// format the scoring stage writes (scored_grid.geojson).
type GeoJSONGridRepository struct {
	path string
}

func NewGeoJSONGridRepository(path string) repository.ScoredGridRepository {
	return &GeoJSONGridRepository{path: path}
}

func (r *GeoJSONGridRepository) LoadScoredGrid(ctx context.Context) ([]model.GridCell, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scored grid %s: %w", r.path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scored grid %s: %w", r.path, err)
	}

	cells := make([]model.GridCell, 0, len(fc.Features))
	skipped := 0
	for _, f := range fc.Features {
		cell, err := FeatureToGridCell(f)
		if err != nil {
			// Malformed cells are dropped, not fatal.
			skipped++
			continue
		}
		cells = append(cells, cell)
	}
	if skipped > 0 {
		log.Printf("scored grid %s: skipped %d malformed features", r.path, skipped)
	}
	log.Printf("loaded %d grid cells from %s", len(cells), r.path)
	return cells, nil
}
