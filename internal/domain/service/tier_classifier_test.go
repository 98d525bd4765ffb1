package service

import (
	"math"
	"testing"

	"corridor-app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableFor maps each listed pixel to cell id row*10+col for compact test
// setup.
func tableFor(coords ...model.RasterCoord) *model.RasterTable {
	table := model.NewRasterTable(len(coords))
	for _, c := range coords {
		table.Put(c, c.Row*10+c.Col)
	}
	return table
}

func pairWithPath(cost float64, cells ...model.RasterCoord) model.PairResult {
	return model.PairResult{
		Cost: cost,
		Path: &model.Path{Cells: cells, TotalCost: cost},
	}
}

func unreachablePair() model.PairResult {
	return model.PairResult{
		Cost: math.Inf(1),
		Err:  &model.ComputationError{Reason: "no traversable route"},
	}
}

func TestThresholds_Arithmetic(t *testing.T) {
	classifier := NewTierClassifier(model.DefaultExtractionConfig())
	bounds := classifier.Thresholds(100)

	assert.InDelta(t, 110.0, bounds[0], 1e-9)
	assert.InDelta(t, 120.0, bounds[1], 1e-9)
	assert.InDelta(t, 130.0, bounds[2], 1e-9)
}

func TestTierFor_InclusiveBoundaries(t *testing.T) {
	classifier := NewTierClassifier(model.DefaultExtractionConfig())
	bounds := classifier.Thresholds(100)

	// Every boundary comparison is inclusive.
	assert.Equal(t, model.Tier1, classifier.TierFor(100, bounds))
	assert.Equal(t, model.Tier1, classifier.TierFor(110, bounds))
	assert.Equal(t, model.Tier2, classifier.TierFor(110.0000001, bounds))
	assert.Equal(t, model.Tier2, classifier.TierFor(120, bounds))
	assert.Equal(t, model.Tier3, classifier.TierFor(130, bounds))
	assert.Equal(t, model.TierNone, classifier.TierFor(130.0000001, bounds))
}

func TestClassifySource_TagsByPairCost(t *testing.T) {
	classifier := NewTierClassifier(model.DefaultExtractionConfig())

	a := model.RasterCoord{Row: 0, Col: 0}
	b := model.RasterCoord{Row: 0, Col: 1}
	c := model.RasterCoord{Row: 0, Col: 2}
	d := model.RasterCoord{Row: 0, Col: 3}
	e := model.RasterCoord{Row: 0, Col: 4}
	table := tableFor(a, b, c, d, e)

	results := []model.PairResult{
		pairWithPath(100, a, b), // min cost, tier 1
		pairWithPath(115, b, c), // tier 2
		pairWithPath(128, c, d), // tier 3
		pairWithPath(140, e),    // beyond tier 3, tags nothing
		unreachablePair(),
	}

	tags, ok := classifier.ClassifySource(results, table)
	require.True(t, ok)

	// b sits on both the tier-1 and tier-2 path; best tier wins.
	assert.Equal(t, model.Tier1, tags[0])
	assert.Equal(t, model.Tier1, tags[1])
	assert.Equal(t, model.Tier2, tags[2])
	assert.Equal(t, model.Tier3, tags[3])

	// The 140-cost pair exceeds the tier-3 bound, so its cell stays out.
	_, tagged := tags[4]
	assert.False(t, tagged)
	assert.Len(t, tags, 4)
}

func TestClassifySource_SkippedWhenNoHubReachable(t *testing.T) {
	classifier := NewTierClassifier(model.DefaultExtractionConfig())
	table := tableFor(model.RasterCoord{Row: 0, Col: 0})

	_, ok := classifier.ClassifySource([]model.PairResult{unreachablePair(), unreachablePair()}, table)
	assert.False(t, ok)
}

func TestClassifySource_PathCellsWithoutGridCoverageIgnored(t *testing.T) {
	classifier := NewTierClassifier(model.DefaultExtractionConfig())

	mapped := model.RasterCoord{Row: 0, Col: 0}
	unmapped := model.RasterCoord{Row: 5, Col: 5}
	table := tableFor(mapped)

	tags, ok := classifier.ClassifySource([]model.PairResult{pairWithPath(50, mapped, unmapped)}, table)
	require.True(t, ok)
	assert.Len(t, tags, 1)
	assert.Equal(t, model.Tier1, tags[0])
}

func TestClassifySource_PerSourceMinimaAreIndependent(t *testing.T) {
	classifier := NewTierClassifier(model.DefaultExtractionConfig())

	cellA := model.RasterCoord{Row: 0, Col: 0}
	cellB := model.RasterCoord{Row: 0, Col: 1}
	table := tableFor(cellA, cellB)

	// Source one: min 100, second pair at 128 lands in tier 3.
	sourceOne := []model.PairResult{
		pairWithPath(100, cellA),
		pairWithPath(128, cellB),
	}
	// Source two: min 1000. Its 1280 pair is also 28% over ITS min, so it
	// must land in tier 3 as well despite the larger magnitude.
	sourceTwo := []model.PairResult{
		pairWithPath(1000, cellA),
		pairWithPath(1280, cellB),
	}

	tagsOne, ok := classifier.ClassifySource(sourceOne, table)
	require.True(t, ok)
	tagsTwo, ok := classifier.ClassifySource(sourceTwo, table)
	require.True(t, ok)

	assert.Equal(t, model.Tier3, tagsOne[1])
	assert.Equal(t, model.Tier3, tagsTwo[1])

	// Cross-source merge keeps the best tier per cell.
	merged := make(model.TierAssignments)
	merged.Merge(tagsOne)
	merged.Merge(tagsTwo)
	assert.Equal(t, model.Tier1, merged[0])
	assert.Equal(t, model.Tier3, merged[1])
}
