package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"corridor-app/internal/database"
	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"

	"github.com/paulmach/orb/geojson"
)

// SupabaseGridCellsRepository reads the scored grid from a Supabase-hosted
// table whose geom column stores GeoJSON.
type SupabaseGridCellsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseGridCellsRepository(client *database.SupabaseClient) repository.ScoredGridRepository {
	return &SupabaseGridCellsRepository{client: client}
}

// scoredGridRow mirrors the scored_grid table shape.
type scoredGridRow struct {
	CellID     int             `json:"cell_id"`
	Geom       json.RawMessage `json:"geom"`
	FinalScore float64         `json:"final_score"`
}

func (r *SupabaseGridCellsRepository) LoadScoredGrid(ctx context.Context) ([]model.GridCell, error) {
	data, _, err := r.client.GetClient().From("scored_grid").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scored grid from Supabase: %w", err)
	}

	var rows []scoredGridRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scored grid rows: %w", err)
	}

	cells := make([]model.GridCell, 0, len(rows))
	for _, row := range rows {
		geom, err := geojson.UnmarshalGeometry(row.Geom)
		if err != nil {
			return nil, fmt.Errorf("failed to parse geometry for cell %d: %w", row.CellID, err)
		}
		poly, err := polygonOf(geom.Geometry())
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", row.CellID, err)
		}
		cells = append(cells, model.GridCell{
			CellID:     row.CellID,
			Geometry:   poly,
			FinalScore: row.FinalScore,
		})
	}

	log.Printf("loaded %d grid cells from Supabase", len(cells))
	return cells, nil
}
