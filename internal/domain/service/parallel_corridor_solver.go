package service

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"corridor-app/internal/domain/model"
)

// ParallelCorridorSolver fans the independent (source, hub) searches out
// over a bounded worker pool. The raster is read-only for the whole solve
// phase, so workers share one LeastCostPathSolver.
type ParallelCorridorSolver struct {
	solver        *LeastCostPathSolver
	raster        *model.CostRaster
	maxGoroutines int
}

// NewParallelCorridorSolver creates a pool-backed solver over one raster.
func NewParallelCorridorSolver(raster *model.CostRaster, maxGoroutines int) *ParallelCorridorSolver {
	if maxGoroutines <= 0 {
		maxGoroutines = model.DefaultMaxConcurrentSolves
	}
	return &ParallelCorridorSolver{
		solver:        NewLeastCostPathSolver(raster),
		raster:        raster,
		maxGoroutines: maxGoroutines,
	}
}

// indexedResult carries a pair outcome back to the collector with its slot.
type indexedResult struct {
	srcIdx int
	hubIdx int
	result model.PairResult
}

// SolveAll computes every (source, hub) pair and returns the results
// grouped per source, hub order preserved. Unreachable pairs come back
// with infinite cost and a recorded ComputationError; they never abort the
// run. Context cancellation stops unstarted work; pairs skipped that way
// are also recorded as unreachable.
func (p *ParallelCorridorSolver) SolveAll(ctx context.Context, sources []model.Source, hubs []model.Hub) [][]model.PairResult {
	total := len(sources) * len(hubs)
	log.Printf("solving %d least-cost paths (%d sources x %d hubs, %d workers)",
		total, len(sources), len(hubs), p.maxGoroutines)
	start := time.Now()

	semaphore := make(chan struct{}, p.maxGoroutines)
	results := make(chan indexedResult, total)
	var wg sync.WaitGroup

	for si, source := range sources {
		for hi, hub := range hubs {
			wg.Add(1)
			go func(si, hi int, source model.Source, hub model.Hub) {
				defer wg.Done()

				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				pr := model.PairResult{Source: source, Hub: hub, Cost: math.Inf(1)}

				if err := ctx.Err(); err != nil {
					pr.Err = &model.ComputationError{
						SourceLabel: source.Label,
						HubID:       hub.ClusterID,
						Reason:      "cancelled before solve: " + err.Error(),
					}
					results <- indexedResult{si, hi, pr}
					return
				}

				// Out-of-extent endpoints clamp to the raster edge.
				from := p.raster.ClampCoord(source.Point)
				to := p.raster.ClampCoord(hub.Point)

				path, cerr := p.solver.Solve(from, to)
				if cerr != nil {
					cerr.SourceLabel = source.Label
					cerr.HubID = hub.ClusterID
					pr.Err = cerr
				} else {
					pr.Path = path
					pr.Cost = path.TotalCost
				}
				results <- indexedResult{si, hi, pr}
			}(si, hi, source, hub)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	bySource := make([][]model.PairResult, len(sources))
	for i := range bySource {
		bySource[i] = make([]model.PairResult, len(hubs))
	}

	solved, unreachable := 0, 0
	for r := range results {
		bySource[r.srcIdx][r.hubIdx] = r.result
		if r.result.Reachable() {
			solved++
		} else {
			unreachable++
		}
	}

	log.Printf("path solve complete in %v (reachable: %d, unreachable: %d)", time.Since(start), solved, unreachable)
	return bySource
}
