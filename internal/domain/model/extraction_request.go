package model

// ExtractionRequest is the HTTP request body for starting a run. Every
// field is an optional override of the default configuration.
type ExtractionRequest struct {
	CellSize            *float64    `json:"cell_size,omitempty"`
	HubCount            *int        `json:"hub_count,omitempty"`
	CapacityThresholdMW *float64    `json:"capacity_threshold_mw,omitempty"`
	TierMargins         *[3]float64 `json:"tier_margins,omitempty"`
	ClusteringSeed      *int64      `json:"clustering_seed,omitempty"`
	MaxConcurrentSolves *int        `json:"max_concurrent_solves,omitempty"`

	// OutputPath, when set, additionally writes the corridor set as a
	// GeoJSON artifact.
	OutputPath string `json:"output_path,omitempty"`
}

// ApplyTo overlays the request's overrides onto a base configuration.
func (r *ExtractionRequest) ApplyTo(cfg ExtractionConfig) ExtractionConfig {
	if r == nil {
		return cfg
	}
	if r.CellSize != nil {
		cfg.CellSize = *r.CellSize
	}
	if r.HubCount != nil {
		cfg.HubCount = *r.HubCount
	}
	if r.CapacityThresholdMW != nil {
		cfg.CapacityThresholdMW = *r.CapacityThresholdMW
	}
	if r.TierMargins != nil {
		cfg.TierMargins = *r.TierMargins
	}
	if r.ClusteringSeed != nil {
		cfg.ClusteringSeed = *r.ClusteringSeed
	}
	if r.MaxConcurrentSolves != nil {
		cfg.MaxConcurrentSolves = *r.MaxConcurrentSolves
	}
	return cfg
}

// ExtractionResponse is returned after a run completes and persists.
type ExtractionResponse struct {
	RunID   string         `json:"run_id"`
	Summary RunSummary     `json:"summary"`
	Cells   []CorridorCell `json:"cells"`
}
