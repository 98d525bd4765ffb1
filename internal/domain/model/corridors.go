package model

import "time"

// CostTier is a priority bucket: 1 is cheapest, 3 the most expensive tier
// still inside the corridor. Zero means untagged.
type CostTier int

const (
	TierNone CostTier = 0
	Tier1    CostTier = 1
	Tier2    CostTier = 2
	Tier3    CostTier = 3
)

// Label returns the output label for a tier, e.g. "Tier_1".
func (t CostTier) Label() string {
	switch t {
	case Tier1:
		return "Tier_1"
	case Tier2:
		return "Tier_2"
	case Tier3:
		return "Tier_3"
	default:
		return ""
	}
}

// Path is the ordered pixel sequence of one least-cost route plus its total
// accumulated cost. Ephemeral: discarded after tier extraction.
type Path struct {
	Cells     []RasterCoord
	TotalCost float64
}

// PairResult captures the outcome of one (source, hub) search: either a
// path with a finite cost, or an isolated failure recorded as infinite
// cost with no path.
type PairResult struct {
	Source Source
	Hub    Hub
	Cost   float64
	Path   *Path
	Err    *ComputationError
}

// Reachable reports whether the pair produced a usable path.
func (r PairResult) Reachable() bool {
	return r.Err == nil && r.Path != nil
}

// TierAssignments accumulates per-cell tiers with best-tier-wins
// semantics. Assign and Merge are commutative, associative and idempotent,
// so per-worker accumulators can be combined in any order.
type TierAssignments map[int]CostTier

// Assign tags a cell, keeping the cheaper tier if one is already present.
func (a TierAssignments) Assign(cellID int, tier CostTier) {
	if tier == TierNone {
		return
	}
	if prev, ok := a[cellID]; !ok || tier < prev {
		a[cellID] = tier
	}
}

// Merge folds another accumulator into this one under the same min-tier
// rule.
func (a TierAssignments) Merge(other TierAssignments) {
	for cellID, tier := range other {
		a.Assign(cellID, tier)
	}
}

// CorridorCell is one output record of the corridor set.
type CorridorCell struct {
	CellID    int    `json:"cell_id"`
	CostTier  string `json:"cost_tier"`
	InfraType string `json:"infra_type,omitempty"`
}

// RunSummary reports what one extraction run did, including localized
// failures that did not abort it.
type RunSummary struct {
	GridCells         int            `json:"grid_cells"`
	ValidRasterCells  int            `json:"valid_raster_cells"`
	RasterRows        int            `json:"raster_rows"`
	RasterCols        int            `json:"raster_cols"`
	Sources           int            `json:"sources"`
	Hubs              int            `json:"hubs"`
	PairsTotal        int            `json:"pairs_total"`
	PairsUnreachable  int            `json:"pairs_unreachable"`
	SourcesSkipped    int            `json:"sources_skipped"`
	TierCounts        map[string]int `json:"tier_counts"`
	Diagnostics       []string       `json:"diagnostics,omitempty"`
	DurationMillis    int64          `json:"duration_ms"`
	CorridorCellCount int            `json:"corridor_cell_count"`
}

// ExtractionInput bundles the read-only collaborator datasets for one run.
type ExtractionInput struct {
	Grid              []GridCell
	StrategicZones    []StrategicZone
	GenerationSites   []GenerationSite
	LoadCenters       []LoadCenter
	TransmissionLines []TransmissionLine
}

// ExtractionResult is the corridor cell set plus the run summary.
type ExtractionResult struct {
	Cells   []CorridorCell `json:"cells"`
	Summary RunSummary     `json:"summary"`
}

// CorridorRun is a persisted extraction run.
type CorridorRun struct {
	RunID     string           `json:"run_id" firestore:"runId"`
	CreatedAt time.Time        `json:"created_at" firestore:"createdAt"`
	Config    ExtractionConfig `json:"config" firestore:"config"`
	Summary   RunSummary       `json:"summary" firestore:"summary"`
	Cells     []CorridorCell   `json:"cells" firestore:"cells"`
}
