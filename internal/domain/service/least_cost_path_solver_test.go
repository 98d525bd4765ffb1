package service

import (
	"math"
	"testing"

	"corridor-app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rasterFromCosts(costs [][]float64) *model.CostRaster {
	rows := len(costs)
	cols := len(costs[0])
	copied := make([][]float64, rows)
	for r := range costs {
		copied[r] = append([]float64(nil), costs[r]...)
	}
	return &model.CostRaster{
		Costs:    copied,
		Rows:     rows,
		Cols:     cols,
		OriginX:  0,
		OriginY:  0,
		CellSize: 10,
	}
}

func TestSolve_PerimeterBeatsExpensiveInterior(t *testing.T) {
	raster := rasterFromCosts([][]float64{
		{1, 1, 9},
		{1, 9, 9},
		{1, 1, 1},
	})

	solver := NewLeastCostPathSolver(raster)
	path, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 2, Col: 2})
	require.Nil(t, cerr)

	// The cheapest route stays on the 1-cost perimeter and never enters
	// the 9-cost interior. With diagonal moves permitted the left column
	// connects to the bottom row through the (1,0)->(2,1) corner step,
	// so four 1-cost cells suffice.
	assert.InDelta(t, 4.0, path.TotalCost, 1e-9)
	assert.Len(t, path.Cells, 4)
	assert.Equal(t, model.RasterCoord{Row: 0, Col: 0}, path.Cells[0])
	assert.Equal(t, model.RasterCoord{Row: 2, Col: 2}, path.Cells[len(path.Cells)-1])
	assert.NotContains(t, path.Cells, model.RasterCoord{Row: 1, Col: 1})
	assert.NotContains(t, path.Cells, model.RasterCoord{Row: 0, Col: 2})
	for _, c := range path.Cells {
		assert.InDelta(t, 1.0, raster.CostAt(c), 1e-9)
	}
}

func TestSolve_LongerCheapRouteBeatsShortExpensiveOne(t *testing.T) {
	// A wall of 9s splits the grid; the cheap detour around it wins even
	// though it visits more cells.
	raster := rasterFromCosts([][]float64{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})

	solver := NewLeastCostPathSolver(raster)
	path, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 0, Col: 2})
	require.Nil(t, cerr)
	assert.InDelta(t, 5.0, path.TotalCost, 1e-9)
	assert.NotContains(t, path.Cells, model.RasterCoord{Row: 0, Col: 1})
	assert.NotContains(t, path.Cells, model.RasterCoord{Row: 1, Col: 1})
}

func TestSolve_DiagonalMovesAllowed(t *testing.T) {
	raster := rasterFromCosts([][]float64{
		{1, 9},
		{9, 1},
	})

	solver := NewLeastCostPathSolver(raster)
	path, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 1, Col: 1})
	require.Nil(t, cerr)

	// Straight down the diagonal: 1 + 1, no axis-aligned detour.
	assert.InDelta(t, 2.0, path.TotalCost, 1e-9)
	assert.Len(t, path.Cells, 2)
}

func TestSolve_SentinelIsAbsoluteBarrier(t *testing.T) {
	inf := math.Inf(1)
	raster := rasterFromCosts([][]float64{
		{1, inf, 1},
		{1, inf, 1},
		{1, inf, 1},
	})

	solver := NewLeastCostPathSolver(raster)
	_, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 0, Col: 2})
	require.NotNil(t, cerr)
}

func TestSolve_BarrierEndpointsFailFast(t *testing.T) {
	inf := math.Inf(1)
	raster := rasterFromCosts([][]float64{
		{inf, 1},
		{1, 1},
	})

	solver := NewLeastCostPathSolver(raster)

	_, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 1, Col: 1})
	require.NotNil(t, cerr)

	_, cerr = solver.Solve(model.RasterCoord{Row: 1, Col: 1}, model.RasterCoord{Row: 0, Col: 0})
	require.NotNil(t, cerr)
}

func TestSolve_SingleCellPath(t *testing.T) {
	raster := rasterFromCosts([][]float64{{4}})
	solver := NewLeastCostPathSolver(raster)

	path, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 0, Col: 0})
	require.Nil(t, cerr)
	assert.InDelta(t, 4.0, path.TotalCost, 1e-9)
	assert.Len(t, path.Cells, 1)
}

func TestSolve_CostNonDecreasingAlongPath(t *testing.T) {
	raster := rasterFromCosts([][]float64{
		{1, 3, 1},
		{2, 5, 2},
		{1, 1, 1},
	})
	solver := NewLeastCostPathSolver(raster)
	path, cerr := solver.Solve(model.RasterCoord{Row: 0, Col: 0}, model.RasterCoord{Row: 2, Col: 2})
	require.Nil(t, cerr)

	running := 0.0
	for _, c := range path.Cells {
		step := raster.CostAt(c)
		assert.GreaterOrEqual(t, step, 0.0)
		running += step
	}
	assert.InDelta(t, running, path.TotalCost, 1e-9)
}
