package service

import (
	"log"
	"math"
	"sort"

	"corridor-app/internal/domain/model"
)

// RasterIndexer converts the scored grid into a dense cost surface plus the
// raster<->cell reverse lookup. Cells are written in ascending cell-id
// order; if two centroids land on the same pixel the later id wins. That
// ordering is the collision contract, not an accident.
type RasterIndexer struct {
	cfg model.ExtractionConfig
}

// NewRasterIndexer creates an indexer for the given configuration.
func NewRasterIndexer(cfg model.ExtractionConfig) *RasterIndexer {
	return &RasterIndexer{cfg: cfg}
}

// Build derives the raster extent from the cell geometries, validates the
// dimensions against the memory bound, initializes every pixel to the
// sentinel and burns in each cell's score at its centroid pixel.
// Dimension problems are fatal ConfigurationErrors raised before any
// allocation; individual cells never fail.
func (ri *RasterIndexer) Build(cells []model.GridCell) (*model.CostRaster, *model.RasterTable, error) {
	if err := ri.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(cells) == 0 {
		return nil, nil, model.NewConfigurationError("scored grid is empty, cannot derive raster extent")
	}

	bound := cells[0].Bound()
	for _, cell := range cells[1:] {
		bound = bound.Union(cell.Bound())
	}

	cellSize := ri.cfg.CellSize
	cols := int((bound.Max[0]-bound.Min[0])/cellSize) + 1
	rows := int((bound.Max[1]-bound.Min[1])/cellSize) + 1
	if rows <= 0 || cols <= 0 {
		return nil, nil, model.NewConfigurationError("derived raster dimensions are non-positive: %dx%d", rows, cols)
	}
	if rows*cols > ri.cfg.MaxRasterCells {
		return nil, nil, model.NewConfigurationError(
			"raster %dx%d exceeds the %d cell memory bound", rows, cols, ri.cfg.MaxRasterCells)
	}

	costs := make([][]float64, rows)
	for r := range costs {
		row := make([]float64, cols)
		for c := range row {
			row[c] = math.Inf(1)
		}
		costs[r] = row
	}

	raster := &model.CostRaster{
		Costs:    costs,
		Rows:     rows,
		Cols:     cols,
		OriginX:  bound.Min[0],
		OriginY:  bound.Min[1],
		CellSize: cellSize,
	}

	// Fixed processing order makes pixel collisions deterministic.
	ordered := make([]model.GridCell, len(cells))
	copy(ordered, cells)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].CellID < ordered[j].CellID })

	table := model.NewRasterTable(len(ordered))
	for _, cell := range ordered {
		coord := raster.CoordOf(cell.Centroid())
		if !raster.InBounds(coord.Row, coord.Col) {
			continue
		}
		raster.Costs[coord.Row][coord.Col] = cell.FinalScore
		table.Put(coord, cell.CellID)
	}

	log.Printf("cost raster built: %dx%d, %d valid cells from %d grid cells", rows, cols, table.Len(), len(cells))
	return raster, table, nil
}
