package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"
	"corridor-app/internal/domain/service"
	repoImpl "corridor-app/internal/repository"

	"github.com/google/uuid"
)

// CorridorExtractionUseCase loads the collaborator datasets, runs the
// extraction pipeline and persists the result.
type CorridorExtractionUseCase interface {
	RunExtraction(ctx context.Context, req *model.ExtractionRequest) (*model.ExtractionResponse, error)
	GetRun(ctx context.Context, runID string) (*model.CorridorRun, error)
}

type corridorExtractionUseCaseImpl struct {
	baseConfig model.ExtractionConfig
	gridRepo   repository.ScoredGridRepository
	siteRepo   repository.SiteRepository
	runRepo    repository.CorridorRunRepository
}

// NewCorridorExtractionUseCase wires the use case with its repositories
// and the base configuration that request overrides apply to.
func NewCorridorExtractionUseCase(
	baseConfig model.ExtractionConfig,
	gridRepo repository.ScoredGridRepository,
	siteRepo repository.SiteRepository,
	runRepo repository.CorridorRunRepository,
) CorridorExtractionUseCase {
	return &corridorExtractionUseCaseImpl{
		baseConfig: baseConfig,
		gridRepo:   gridRepo,
		siteRepo:   siteRepo,
		runRepo:    runRepo,
	}
}

func (u *corridorExtractionUseCaseImpl) RunExtraction(ctx context.Context, req *model.ExtractionRequest) (*model.ExtractionResponse, error) {
	cfg := req.ApplyTo(u.baseConfig)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	input, err := u.loadInput(ctx)
	if err != nil {
		return nil, err
	}

	extractor := service.NewCorridorExtractionService(cfg)
	result, err := extractor.Extract(ctx, *input)
	if err != nil {
		return nil, err
	}

	run := &model.CorridorRun{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		Summary:   result.Summary,
		Cells:     result.Cells,
	}
	if err := u.runRepo.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("extraction succeeded but persisting the run failed: %w", err)
	}

	if req != nil && req.OutputPath != "" {
		grid := make(map[int]model.GridCell, len(input.Grid))
		for _, gc := range input.Grid {
			grid[gc.CellID] = gc
		}
		if err := repoImpl.WriteCorridorGeoJSON(req.OutputPath, result.Cells, grid); err != nil {
			// The artifact is a convenience; the persisted run is canonical.
			log.Printf("warning: %v", err)
		}
	}

	return &model.ExtractionResponse{
		RunID:   run.RunID,
		Summary: run.Summary,
		Cells:   run.Cells,
	}, nil
}

func (u *corridorExtractionUseCaseImpl) GetRun(ctx context.Context, runID string) (*model.CorridorRun, error) {
	if runID == "" {
		return nil, fmt.Errorf("run id is required")
	}
	return u.runRepo.GetRun(ctx, runID)
}

// loadInput gathers every read-only collaborator dataset for one run.
func (u *corridorExtractionUseCaseImpl) loadInput(ctx context.Context) (*model.ExtractionInput, error) {
	grid, err := u.gridRepo.LoadScoredGrid(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scored grid failed: %w", err)
	}
	zones, err := u.siteRepo.LoadStrategicZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading strategic zones failed: %w", err)
	}
	sites, err := u.siteRepo.LoadGenerationSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading generation sites failed: %w", err)
	}
	centers, err := u.siteRepo.LoadLoadCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading load centers failed: %w", err)
	}
	lines, err := u.siteRepo.LoadTransmissionLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transmission lines failed: %w", err)
	}

	return &model.ExtractionInput{
		Grid:              grid,
		StrategicZones:    zones,
		GenerationSites:   sites,
		LoadCenters:       centers,
		TransmissionLines: lines,
	}, nil
}
