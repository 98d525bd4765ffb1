package model

// Source categories used to tag corridor path origins.
const (
	SourceCategoryStrategicZone  = "strategic_zone"
	SourceCategoryGenerationSite = "generation_site"
)

// Generation site statuses as they appear in the upstream plant dataset.
const (
	PlantStatusProposed  = "Proposed"
	PlantStatusOperating = "Operating"
	PlantStatusRetired   = "Retired"
)

// Fuel categories for generation sites.
const (
	FuelCategoryWind    = "wind"
	FuelCategorySolar   = "solar"
	FuelCategoryHydro   = "hydro"
	FuelCategoryBiomass = "biomass"
)

// Infrastructure classification labels for corridor cells.
const (
	InfraTypeNewCorridor      = "New_Corridor"
	InfraTypeContainsExisting = "Contains_Existing"
)

// Extraction defaults. CellSize must match the tessellation used to build
// the scored grid upstream.
const (
	DefaultCellSize            = 2000.0 // meters (EPSG:5070)
	DefaultHubCount            = 10
	DefaultCapacityThresholdMW = 20.0
	DefaultClusteringSeed      = 42
	DefaultMaxRasterCells      = 50_000_000
	DefaultMaxConcurrentSolves = 8
)

// DefaultTierMargins are the margins over each source's minimum hub cost
// that bound tiers 1-3.
var DefaultTierMargins = [3]float64{0.10, 0.20, 0.30}

// GetAllFuelCategories returns the renewable fuel categories considered for
// source selection.
func GetAllFuelCategories() []string {
	return []string{
		FuelCategoryWind,
		FuelCategorySolar,
		FuelCategoryHydro,
		FuelCategoryBiomass,
	}
}
