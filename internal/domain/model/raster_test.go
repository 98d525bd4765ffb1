package model

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRaster(rows, cols int) *CostRaster {
	costs := make([][]float64, rows)
	for r := range costs {
		costs[r] = make([]float64, cols)
	}
	return &CostRaster{
		Costs:    costs,
		Rows:     rows,
		Cols:     cols,
		OriginX:  0,
		OriginY:  0,
		CellSize: 10,
	}
}

func TestCoordOf_RowAxisInverted(t *testing.T) {
	r := testRaster(4, 4)

	// A point near the geographic top must land on row 0.
	top := r.CoordOf(orb.Point{5, 35})
	assert.Equal(t, 0, top.Row)
	assert.Equal(t, 0, top.Col)

	bottom := r.CoordOf(orb.Point{35, 5})
	assert.Equal(t, 3, bottom.Row)
	assert.Equal(t, 3, bottom.Col)
}

func TestCoordOf_BoundaryResolvesToOneIndex(t *testing.T) {
	r := testRaster(4, 4)

	// Exactly on a cell boundary: floor division picks the upper cell,
	// never two.
	onBoundary := r.CoordOf(orb.Point{10, 10})
	assert.Equal(t, RasterCoord{Row: 2, Col: 1}, onBoundary)

	// Repeated evaluation is stable.
	for i := 0; i < 100; i++ {
		assert.Equal(t, onBoundary, r.CoordOf(orb.Point{10, 10}))
	}
}

func TestClampCoord_OutOfExtentNeverErrors(t *testing.T) {
	r := testRaster(4, 4)

	farAway := r.ClampCoord(orb.Point{-1000, 99999})
	assert.True(t, r.InBounds(farAway.Row, farAway.Col))
	assert.Equal(t, RasterCoord{Row: 0, Col: 0}, farAway)

	other := r.ClampCoord(orb.Point{99999, -1000})
	assert.Equal(t, RasterCoord{Row: 3, Col: 3}, other)
}

func TestRasterTable_CollisionLastWriteWins(t *testing.T) {
	table := NewRasterTable(4)
	pixel := RasterCoord{Row: 1, Col: 1}

	table.Put(pixel, 7)
	table.Put(pixel, 9)

	id, ok := table.CellAt(pixel)
	require.True(t, ok)
	assert.Equal(t, 9, id)

	// The displaced cell no longer resolves to the pixel.
	_, ok = table.CoordFor(7)
	assert.False(t, ok)

	coord, ok := table.CoordFor(9)
	require.True(t, ok)
	assert.Equal(t, pixel, coord)
	assert.Equal(t, 1, table.Len())
}

func TestIsBarrier(t *testing.T) {
	r := testRaster(2, 2)
	r.Costs[0][0] = math.Inf(1)
	r.Costs[0][1] = 3.5

	assert.True(t, r.IsBarrier(RasterCoord{0, 0}))
	assert.False(t, r.IsBarrier(RasterCoord{0, 1}))
	assert.Equal(t, 3, r.ValidCells())
}
