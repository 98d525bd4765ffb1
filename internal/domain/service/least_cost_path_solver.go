package service

import (
	"container/heap"
	"math"

	"corridor-app/internal/domain/model"
)

// neighborOffsets8 is the 8-connectivity stencil; diagonal moves are
// permitted and carry no distance weighting.
var neighborOffsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LeastCostPathSolver runs a min-heap Dijkstra over the cost raster.
// The cost of a route is the sum of the raster values of every cell on it,
// the start cell included; sentinel pixels are never enqueued.
// The raster is treated as read-only, so one solver can serve many
// goroutines concurrently.
type LeastCostPathSolver struct {
	raster *model.CostRaster
}

// NewLeastCostPathSolver creates a solver bound to one raster.
func NewLeastCostPathSolver(raster *model.CostRaster) *LeastCostPathSolver {
	return &LeastCostPathSolver{raster: raster}
}

// Solve computes the least-cost path between two raster coordinates.
// An unreachable pair returns a ComputationError; callers record it as an
// infinite cost and move on.
func (s *LeastCostPathSolver) Solve(start, goal model.RasterCoord) (*model.Path, *model.ComputationError) {
	r := s.raster
	if r.IsBarrier(start) {
		return nil, &model.ComputationError{Reason: "start pixel has no grid coverage"}
	}
	if r.IsBarrier(goal) {
		return nil, &model.ComputationError{Reason: "goal pixel has no grid coverage"}
	}

	n := r.Rows * r.Cols
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	prev := make([]int32, n)
	for i := range prev {
		prev[i] = -1
	}
	visited := make([]bool, n)

	startIdx := start.Row*r.Cols + start.Col
	goalIdx := goal.Row*r.Cols + goal.Col
	dist[startIdx] = r.CostAt(start)

	pq := make(pixelPQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &pixelItem{idx: startIdx, dist: dist[startIdx]})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pixelItem)
		u := item.idx
		if visited[u] {
			// Stale entry from the lazy decrease-key strategy.
			continue
		}
		visited[u] = true
		if u == goalIdx {
			break
		}

		uRow, uCol := u/r.Cols, u%r.Cols
		for _, off := range neighborOffsets8 {
			vRow, vCol := uRow+off[0], uCol+off[1]
			if !r.InBounds(vRow, vCol) {
				continue
			}
			entryCost := r.Costs[vRow][vCol]
			if math.IsInf(entryCost, 1) {
				continue
			}
			v := vRow*r.Cols + vCol
			if visited[v] {
				continue
			}
			nd := dist[u] + entryCost
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = int32(u)
			heap.Push(&pq, &pixelItem{idx: v, dist: nd})
		}
	}

	if math.IsInf(dist[goalIdx], 1) {
		return nil, &model.ComputationError{Reason: "no traversable route between endpoints"}
	}

	return &model.Path{
		Cells:     s.reconstruct(prev, startIdx, goalIdx),
		TotalCost: dist[goalIdx],
	}, nil
}

// reconstruct walks the predecessor chain back from the goal.
func (s *LeastCostPathSolver) reconstruct(prev []int32, startIdx, goalIdx int) []model.RasterCoord {
	var reversed []int
	for at := goalIdx; at != -1; at = int(prev[at]) {
		reversed = append(reversed, at)
		if at == startIdx {
			break
		}
	}
	cells := make([]model.RasterCoord, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		idx := reversed[i]
		cells = append(cells, model.RasterCoord{Row: idx / s.raster.Cols, Col: idx % s.raster.Cols})
	}
	return cells
}

// pixelItem is one heap entry: a flattened raster index and its tentative
// distance from the start.
type pixelItem struct {
	idx  int
	dist float64
}

// pixelPQ is a min-heap over tentative distances, using the lazy
// decrease-key pattern: improved distances push duplicates and stale
// entries are skipped when popped.
type pixelPQ []*pixelItem

func (pq pixelPQ) Len() int            { return len(pq) }
func (pq pixelPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq pixelPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pixelPQ) Push(x interface{}) { *pq = append(*pq, x.(*pixelItem)) }
func (pq *pixelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
