package repository

import (
	"context"
	"fmt"
	"log"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"
	"corridor-app/internal/infrastructure/database"

	"github.com/paulmach/orb/geojson"
)

// PostgresGridCellsRepository reads the scored grid from a PostGIS table.
// Geometry comes back as GeoJSON via ST_AsGeoJSON so the orb decoding path
// is shared with the file repository.
type PostgresGridCellsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresGridCellsRepository(client *database.PostgreSQLClient) repository.ScoredGridRepository {
	return &PostgresGridCellsRepository{client: client}
}

func (r *PostgresGridCellsRepository) LoadScoredGrid(ctx context.Context) ([]model.GridCell, error) {
	query := `
		SELECT cell_id, ST_AsGeoJSON(geom), final_score
		FROM scored_grid
		ORDER BY cell_id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scored grid: %w", err)
	}
	defer rows.Close()

	var cells []model.GridCell
	for rows.Next() {
		var cellID int
		var geomJSON string
		var score float64
		if err := rows.Scan(&cellID, &geomJSON, &score); err != nil {
			return nil, fmt.Errorf("failed to scan scored grid row: %w", err)
		}

		geom, err := geojson.UnmarshalGeometry([]byte(geomJSON))
		if err != nil {
			return nil, fmt.Errorf("failed to parse geometry for cell %d: %w", cellID, err)
		}
		poly, err := polygonOf(geom.Geometry())
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", cellID, err)
		}

		cells = append(cells, model.GridCell{
			CellID:     cellID,
			Geometry:   poly,
			FinalScore: score,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scored grid iteration failed: %w", err)
	}

	log.Printf("loaded %d grid cells from PostgreSQL", len(cells))
	return cells, nil
}
