package repository

import (
	"fmt"
	"log"
	"os"

	"corridor-app/internal/domain/model"
)

// WriteCorridorGeoJSON writes the corridor cell set as a GeoJSON
// FeatureCollection (the corridor_zones.geojson artifact). Geometry is
// resolved through the grid map; cost_tier and infra_type become feature
// properties.
func WriteCorridorGeoJSON(path string, cells []model.CorridorCell, grid map[int]model.GridCell) error {
	fc := CorridorCellsToFeatureCollection(cells, grid)
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal corridor cells: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("corridors saved: %s (%d cells)", path, len(cells))
	return nil
}
