package service

import (
	"fmt"
	"log"
	"math/rand"

	"corridor-app/internal/domain/model"

	"github.com/paulmach/orb"
)

// kmeansMaxIterations bounds Lloyd's iterations; runs converge long before
// this on real load-center sets.
const kmeansMaxIterations = 100

// LoadHubSelector synthesizes regional load hubs by clustering data-center
// points and assembles the candidate source set from strategic zones and
// qualifying generation sites.
type LoadHubSelector struct {
	cfg model.ExtractionConfig
}

// NewLoadHubSelector creates a selector for the given configuration.
func NewLoadHubSelector(cfg model.ExtractionConfig) *LoadHubSelector {
	return &LoadHubSelector{cfg: cfg}
}

// SelectHubs clusters load centers into HubCount hubs with a seeded Lloyd's
// K-means. Each hub sits at the arithmetic mean of its cluster's member
// coordinates. K is clamped to the number of points so every hub has at
// least one member. The fixed seed makes the result reproducible.
func (s *LoadHubSelector) SelectHubs(centers []model.LoadCenter) []model.Hub {
	if len(centers) == 0 {
		return nil
	}

	k := s.cfg.HubCount
	if k > len(centers) {
		k = len(centers)
	}

	points := make([]orb.Point, len(centers))
	for i, c := range centers {
		points[i] = c.Point
	}

	rng := rand.New(rand.NewSource(s.cfg.ClusteringSeed))
	centroids := make([]orb.Point, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centroids[i] = points[idx]
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestDist := squaredDistance(p, centroids[0])
			for c := 1; c < k; c++ {
				if d := squaredDistance(p, centroids[c]); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sumX := make([]float64, k)
		sumY := make([]float64, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			sumX[c] += p[0]
			sumY[c] += p[1]
			counts[c]++
		}
		for c := 0; c < k; c++ {
			// An emptied cluster keeps its previous centroid.
			if counts[c] == 0 {
				continue
			}
			centroids[c] = orb.Point{sumX[c] / float64(counts[c]), sumY[c] / float64(counts[c])}
		}
	}

	counts := make([]int, k)
	for _, c := range assignments {
		counts[c]++
	}

	hubs := make([]model.Hub, k)
	for c := 0; c < k; c++ {
		hubs[c] = model.Hub{ClusterID: c, Point: centroids[c], Members: counts[c]}
	}
	log.Printf("clustered %d load centers into %d hubs (seed %d)", len(centers), k, s.cfg.ClusteringSeed)
	return hubs
}

// SelectSources builds the source list: every strategic zone, plus every
// proposed generation site whose nameplate capacity meets the threshold.
// Labels are unique within the run and exist for diagnostics only.
func (s *LoadHubSelector) SelectSources(zones []model.StrategicZone, sites []model.GenerationSite) []model.Source {
	sources := make([]model.Source, 0, len(zones))
	for i, zone := range zones {
		sources = append(sources, model.Source{
			Label:    fmt.Sprintf("ZONE_%d", i),
			Category: model.SourceCategoryStrategicZone,
			Point:    zone.Point,
		})
	}

	qualifying := 0
	for i, site := range sites {
		if site.Status != model.PlantStatusProposed {
			continue
		}
		if site.NameplateMW < s.cfg.CapacityThresholdMW {
			continue
		}
		sources = append(sources, model.Source{
			Label:    fmt.Sprintf("PLANT_%d", i),
			Category: model.SourceCategoryGenerationSite,
			Point:    site.Point,
		})
		qualifying++
	}

	log.Printf("assembled %d sources (%d strategic zones, %d proposed plants >= %.0f MW)",
		len(sources), len(zones), qualifying, s.cfg.CapacityThresholdMW)
	return sources
}

func squaredDistance(a, b orb.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}
