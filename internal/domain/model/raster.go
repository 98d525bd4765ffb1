package model

import (
	"math"

	"github.com/paulmach/orb"
)

// SentinelCost marks raster cells with no underlying scored-grid coverage.
// The solver treats it as an absolute barrier.
var SentinelCost = math.Inf(1)

// RasterCoord addresses one raster pixel. Row 0 is the geographic top.
type RasterCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CostRaster is the dense 2-D cost surface derived from the scored grid,
// plus the geo-transform needed to map coordinates to pixels. Read-only
// once built.
type CostRaster struct {
	Costs    [][]float64
	Rows     int
	Cols     int
	OriginX  float64 // minimum x of the grid extent
	OriginY  float64 // minimum y of the grid extent
	CellSize float64
}

// InBounds reports whether (row, col) lies inside the raster.
func (r *CostRaster) InBounds(row, col int) bool {
	return row >= 0 && row < r.Rows && col >= 0 && col < r.Cols
}

// CostAt returns the cost of a pixel. Callers must check bounds first.
func (r *CostRaster) CostAt(c RasterCoord) float64 {
	return r.Costs[c.Row][c.Col]
}

// IsBarrier reports whether a pixel carries the sentinel cost.
func (r *CostRaster) IsBarrier(c RasterCoord) bool {
	return math.IsInf(r.Costs[c.Row][c.Col], 1)
}

// CoordOf maps a geographic point to raster indices by floor division from
// the origin, with the row axis inverted so row 0 is the top. The result
// may be out of bounds; see ClampCoord.
func (r *CostRaster) CoordOf(p orb.Point) RasterCoord {
	col := int(math.Floor((p[0] - r.OriginX) / r.CellSize))
	row := r.Rows - 1 - int(math.Floor((p[1]-r.OriginY)/r.CellSize))
	return RasterCoord{Row: row, Col: col}
}

// ClampCoord maps a point to raster indices, clamping into valid bounds.
// An out-of-extent endpoint never errors; it snaps to the nearest edge
// pixel.
func (r *CostRaster) ClampCoord(p orb.Point) RasterCoord {
	c := r.CoordOf(p)
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > r.Rows-1 {
		c.Row = r.Rows - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col > r.Cols-1 {
		c.Col = r.Cols - 1
	}
	return c
}

// ValidCells counts pixels that are not the sentinel.
func (r *CostRaster) ValidCells() int {
	n := 0
	for _, row := range r.Costs {
		for _, v := range row {
			if !math.IsInf(v, 1) {
				n++
			}
		}
	}
	return n
}

// RasterTable is the bidirectional raster-pixel <-> cell-id mapping, built
// once by the indexer. Collisions are resolved by writing cells in
// ascending cell-id order, last write wins.
type RasterTable struct {
	byCoord map[RasterCoord]int
	byCell  map[int]RasterCoord
}

// NewRasterTable returns an empty mapping with room for n cells.
func NewRasterTable(n int) *RasterTable {
	return &RasterTable{
		byCoord: make(map[RasterCoord]int, n),
		byCell:  make(map[int]RasterCoord, n),
	}
}

// Put records the mapping for one cell, displacing any previous occupant of
// the pixel.
func (t *RasterTable) Put(c RasterCoord, cellID int) {
	if prev, ok := t.byCoord[c]; ok {
		delete(t.byCell, prev)
	}
	t.byCoord[c] = cellID
	t.byCell[cellID] = c
}

// CellAt returns the cell id occupying a pixel, if any.
func (t *RasterTable) CellAt(c RasterCoord) (int, bool) {
	id, ok := t.byCoord[c]
	return id, ok
}

// CoordFor returns the pixel a cell id was written to, if any.
func (t *RasterTable) CoordFor(cellID int) (RasterCoord, bool) {
	c, ok := t.byCell[cellID]
	return c, ok
}

// Len returns the number of mapped pixels.
func (t *RasterTable) Len() int {
	return len(t.byCoord)
}
