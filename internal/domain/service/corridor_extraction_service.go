package service

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"corridor-app/internal/domain/model"
)

// CorridorExtractionService runs the full pipeline:
// raster indexing -> source/hub selection -> per-pair least-cost paths ->
// tier classification -> best-tier merge -> optional infrastructure
// labeling. It is stateless across runs; identical inputs and
// configuration produce identical output.
type CorridorExtractionService struct {
	cfg        model.ExtractionConfig
	indexer    *RasterIndexer
	selector   *LoadHubSelector
	classifier *TierClassifier
	infra      *InfraClassifier
}

// NewCorridorExtractionService wires the pipeline stages for one
// configuration.
func NewCorridorExtractionService(cfg model.ExtractionConfig) *CorridorExtractionService {
	return &CorridorExtractionService{
		cfg:        cfg,
		indexer:    NewRasterIndexer(cfg),
		selector:   NewLoadHubSelector(cfg),
		classifier: NewTierClassifier(cfg),
		infra:      NewInfraClassifier(),
	}
}

// Extract runs one extraction. Only configuration problems return an
// error; empty inputs and unreachable pairs degrade to a smaller (possibly
// empty) corridor set with diagnostics in the summary.
func (s *CorridorExtractionService) Extract(ctx context.Context, input model.ExtractionInput) (*model.ExtractionResult, error) {
	start := time.Now()

	raster, table, err := s.indexer.Build(input.Grid)
	if err != nil {
		return nil, err
	}

	summary := model.RunSummary{
		GridCells:        len(input.Grid),
		ValidRasterCells: table.Len(),
		RasterRows:       raster.Rows,
		RasterCols:       raster.Cols,
		TierCounts:       map[string]int{},
	}

	hubs := s.selector.SelectHubs(input.LoadCenters)
	sources := s.selector.SelectSources(input.StrategicZones, input.GenerationSites)
	summary.Sources = len(sources)
	summary.Hubs = len(hubs)

	if len(sources) == 0 || len(hubs) == 0 {
		derr := model.NewDataError("no corridor endpoints: %d sources, %d hubs", len(sources), len(hubs))
		log.Printf("extraction short-circuited: %v", derr)
		summary.Diagnostics = append(summary.Diagnostics, derr.Error())
		summary.DurationMillis = time.Since(start).Milliseconds()
		return &model.ExtractionResult{Cells: []model.CorridorCell{}, Summary: summary}, nil
	}

	pool := NewParallelCorridorSolver(raster, s.cfg.MaxConcurrentSolves)
	bySource := pool.SolveAll(ctx, sources, hubs)

	for _, results := range bySource {
		for _, pr := range results {
			summary.PairsTotal++
			if !pr.Reachable() {
				summary.PairsUnreachable++
				if pr.Err != nil {
					summary.Diagnostics = append(summary.Diagnostics, pr.Err.Error())
				}
			}
		}
	}

	merged := s.classifySources(bySource, table, &summary)

	cells := make([]model.CorridorCell, 0, len(merged))
	for cellID, tier := range merged {
		cells = append(cells, model.CorridorCell{CellID: cellID, CostTier: tier.Label()})
		summary.TierCounts[tier.Label()]++
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].CellID < cells[j].CellID })

	if len(input.TransmissionLines) > 0 && len(cells) > 0 {
		grid := make(map[int]model.GridCell, len(input.Grid))
		for _, gc := range input.Grid {
			grid[gc.CellID] = gc
		}
		cells = s.infra.Classify(cells, grid, input.TransmissionLines)
	}

	summary.CorridorCellCount = len(cells)
	summary.DurationMillis = time.Since(start).Milliseconds()
	log.Printf("corridor extraction complete: %d cells (T1=%d, T2=%d, T3=%d) in %v",
		len(cells), summary.TierCounts[model.Tier1.Label()], summary.TierCounts[model.Tier2.Label()],
		summary.TierCounts[model.Tier3.Label()], time.Since(start))

	return &model.ExtractionResult{Cells: cells, Summary: summary}, nil
}

// classifySources tags cells per source concurrently. Each worker fills a
// local accumulator; the collect loop folds them together with the
// min-tier rule, so the merge result is independent of completion order.
func (s *CorridorExtractionService) classifySources(bySource [][]model.PairResult, table *model.RasterTable, summary *model.RunSummary) model.TierAssignments {
	semaphore := make(chan struct{}, s.cfg.MaxConcurrentSolves)
	results := make(chan model.TierAssignments, len(bySource))
	skipped := make(chan string, len(bySource))
	var wg sync.WaitGroup

	for i := range bySource {
		wg.Add(1)
		go func(pairResults []model.PairResult) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			tags, ok := s.classifier.ClassifySource(pairResults, table)
			if !ok {
				if len(pairResults) > 0 {
					skipped <- pairResults[0].Source.Label
				}
				return
			}
			results <- tags
		}(bySource[i])
	}

	go func() {
		wg.Wait()
		close(results)
		close(skipped)
	}()

	merged := make(model.TierAssignments)
	for tags := range results {
		merged.Merge(tags)
	}
	for label := range skipped {
		summary.SourcesSkipped++
		summary.Diagnostics = append(summary.Diagnostics, "source "+label+" skipped: no reachable hub")
	}
	return merged
}
