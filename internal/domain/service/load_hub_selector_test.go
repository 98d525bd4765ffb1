package service

import (
	"sort"
	"testing"

	"corridor-app/internal/domain/model"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCenters(points ...orb.Point) []model.LoadCenter {
	centers := make([]model.LoadCenter, len(points))
	for i, p := range points {
		centers[i] = model.LoadCenter{Point: p}
	}
	return centers
}

func TestSelectHubs_TwoObviousClusters(t *testing.T) {
	cfg := testConfig()
	cfg.HubCount = 2
	selector := NewLoadHubSelector(cfg)

	centers := loadCenters(
		orb.Point{0, 0}, orb.Point{0, 2}, orb.Point{2, 0}, orb.Point{2, 2},
		orb.Point{100, 100}, orb.Point{100, 102}, orb.Point{102, 100}, orb.Point{102, 102},
	)

	hubs := selector.SelectHubs(centers)
	require.Len(t, hubs, 2)

	sort.Slice(hubs, func(i, j int) bool { return hubs[i].Point[0] < hubs[j].Point[0] })

	// Each hub is the arithmetic mean of its cluster members.
	assert.InDelta(t, 1.0, hubs[0].Point[0], 1e-9)
	assert.InDelta(t, 1.0, hubs[0].Point[1], 1e-9)
	assert.Equal(t, 4, hubs[0].Members)
	assert.InDelta(t, 101.0, hubs[1].Point[0], 1e-9)
	assert.InDelta(t, 101.0, hubs[1].Point[1], 1e-9)
	assert.Equal(t, 4, hubs[1].Members)
}

func TestSelectHubs_DeterministicForFixedSeed(t *testing.T) {
	cfg := testConfig()
	cfg.HubCount = 3
	selector := NewLoadHubSelector(cfg)

	centers := loadCenters(
		orb.Point{1, 7}, orb.Point{4, 2}, orb.Point{9, 9}, orb.Point{3, 3},
		orb.Point{8, 1}, orb.Point{2, 8}, orb.Point{6, 6}, orb.Point{7, 4},
		orb.Point{0, 5}, orb.Point{5, 0},
	)

	first := selector.SelectHubs(centers)
	second := selector.SelectHubs(centers)
	assert.Equal(t, first, second)
}

func TestSelectHubs_KClampedToPointCount(t *testing.T) {
	selector := NewLoadHubSelector(testConfig()) // HubCount 2 in testConfig

	hubs := selector.SelectHubs(loadCenters(orb.Point{5, 5}))
	require.Len(t, hubs, 1)
	assert.Equal(t, orb.Point{5, 5}, hubs[0].Point)
	assert.Equal(t, 1, hubs[0].Members)
}

func TestSelectHubs_EmptyInput(t *testing.T) {
	selector := NewLoadHubSelector(testConfig())
	assert.Nil(t, selector.SelectHubs(nil))
}

func TestSelectSources_FiltersAndLabels(t *testing.T) {
	selector := NewLoadHubSelector(testConfig()) // threshold 20 MW

	zones := []model.StrategicZone{
		{Point: orb.Point{1, 1}},
		{Point: orb.Point{2, 2}},
	}
	sites := []model.GenerationSite{
		{Point: orb.Point{3, 3}, Status: model.PlantStatusProposed, NameplateMW: 150, FuelCategory: model.FuelCategoryWind},
		{Point: orb.Point{4, 4}, Status: model.PlantStatusProposed, NameplateMW: 20, FuelCategory: model.FuelCategorySolar}, // threshold is inclusive
		{Point: orb.Point{5, 5}, Status: model.PlantStatusProposed, NameplateMW: 19.9, FuelCategory: model.FuelCategorySolar},
		{Point: orb.Point{6, 6}, Status: model.PlantStatusOperating, NameplateMW: 500, FuelCategory: model.FuelCategoryHydro},
		{Point: orb.Point{7, 7}, Status: model.PlantStatusRetired, NameplateMW: 80, FuelCategory: model.FuelCategoryBiomass},
	}

	sources := selector.SelectSources(zones, sites)
	require.Len(t, sources, 4)

	assert.Equal(t, "ZONE_0", sources[0].Label)
	assert.Equal(t, model.SourceCategoryStrategicZone, sources[0].Category)
	assert.Equal(t, "ZONE_1", sources[1].Label)
	assert.Equal(t, "PLANT_0", sources[2].Label)
	assert.Equal(t, model.SourceCategoryGenerationSite, sources[2].Category)
	assert.Equal(t, "PLANT_1", sources[3].Label)

	// Labels are unique.
	seen := map[string]bool{}
	for _, s := range sources {
		assert.False(t, seen[s.Label], "duplicate label %s", s.Label)
		seen[s.Label] = true
	}
}

func TestSelectSources_Empty(t *testing.T) {
	selector := NewLoadHubSelector(testConfig())
	assert.Empty(t, selector.SelectSources(nil, nil))
}
