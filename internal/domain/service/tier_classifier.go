package service

import (
	"math"

	"corridor-app/internal/domain/model"
)

// TierClassifier buckets the cells traversed by each pair's path into
// priority tiers. Thresholds are relative to the source's own minimum hub
// cost, never a global one, and every comparison is inclusive.
type TierClassifier struct {
	cfg model.ExtractionConfig
}

// NewTierClassifier creates a classifier for the given configuration.
func NewTierClassifier(cfg model.ExtractionConfig) *TierClassifier {
	return &TierClassifier{cfg: cfg}
}

// Thresholds derives the three inclusive tier bounds from a source's
// minimum finite cost: minCost*(1+m1), *(1+m2), *(1+m3).
func (t *TierClassifier) Thresholds(minCost float64) [3]float64 {
	return [3]float64{
		minCost * (1 + t.cfg.TierMargins[0]),
		minCost * (1 + t.cfg.TierMargins[1]),
		minCost * (1 + t.cfg.TierMargins[2]),
	}
}

// TierFor returns the tier a pair cost falls into, or TierNone when the
// cost exceeds the tier-3 bound (the pair tags nothing).
func (t *TierClassifier) TierFor(cost float64, bounds [3]float64) model.CostTier {
	switch {
	case cost <= bounds[0]:
		return model.Tier1
	case cost <= bounds[1]:
		return model.Tier2
	case cost <= bounds[2]:
		return model.Tier3
	default:
		return model.TierNone
	}
}

// ClassifySource tags the cells traversed by one source's hub paths.
// The tier of every cell on a path is decided by that pair's total cost
// relative to the source's thresholds. Returns ok=false when no hub is
// reachable from the source; the source is then skipped entirely.
//
// The returned accumulator merges with any other via
// TierAssignments.Merge; the min-tier rule makes the cross-source merge
// order-independent.
func (t *TierClassifier) ClassifySource(results []model.PairResult, table *model.RasterTable) (model.TierAssignments, bool) {
	minCost := math.Inf(1)
	for _, pr := range results {
		if pr.Reachable() && pr.Cost < minCost {
			minCost = pr.Cost
		}
	}
	if math.IsInf(minCost, 1) {
		return nil, false
	}

	bounds := t.Thresholds(minCost)
	tags := make(model.TierAssignments)
	for _, pr := range results {
		if !pr.Reachable() {
			continue
		}
		tier := t.TierFor(pr.Cost, bounds)
		if tier == model.TierNone {
			continue
		}
		for _, coord := range pr.Path.Cells {
			if cellID, ok := table.CellAt(coord); ok {
				tags.Assign(cellID, tier)
			}
		}
	}
	return tags, true
}
