package model

// ExtractionConfig is the value object carried through every pipeline
// stage. No stage reads configuration from anywhere else.
type ExtractionConfig struct {
	CellSize            float64    `json:"cell_size"`             // raster cell size in meters, must equal the upstream grid's
	HubCount            int        `json:"hub_count"`             // K for load-center clustering
	CapacityThresholdMW float64    `json:"capacity_threshold_mw"` // minimum nameplate capacity for proposed plants
	TierMargins         [3]float64 `json:"tier_margins"`          // margins over the per-source minimum cost
	ClusteringSeed      int64      `json:"clustering_seed"`       // fixed seed so hub synthesis is reproducible
	MaxRasterCells      int        `json:"max_raster_cells"`      // memory bound on rows*cols
	MaxConcurrentSolves int        `json:"max_concurrent_solves"` // worker pool size for path solving
}

// DefaultExtractionConfig returns the reference configuration.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		CellSize:            DefaultCellSize,
		HubCount:            DefaultHubCount,
		CapacityThresholdMW: DefaultCapacityThresholdMW,
		TierMargins:         DefaultTierMargins,
		ClusteringSeed:      DefaultClusteringSeed,
		MaxRasterCells:      DefaultMaxRasterCells,
		MaxConcurrentSolves: DefaultMaxConcurrentSolves,
	}
}

// Validate checks the configuration before any raster allocation happens.
func (c ExtractionConfig) Validate() error {
	if c.CellSize <= 0 {
		return NewConfigurationError("cell size must be positive, got %v", c.CellSize)
	}
	if c.HubCount <= 0 {
		return NewConfigurationError("hub count must be positive, got %d", c.HubCount)
	}
	if c.MaxRasterCells <= 0 {
		return NewConfigurationError("max raster cells must be positive, got %d", c.MaxRasterCells)
	}
	if c.MaxConcurrentSolves <= 0 {
		return NewConfigurationError("max concurrent solves must be positive, got %d", c.MaxConcurrentSolves)
	}
	prev := 0.0
	for i, m := range c.TierMargins {
		if m <= 0 {
			return NewConfigurationError("tier margin %d must be positive, got %v", i+1, m)
		}
		if m < prev {
			return NewConfigurationError("tier margins must be non-decreasing, got %v", c.TierMargins)
		}
		prev = m
	}
	return nil
}
