package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"corridor-app/internal/database"
	"corridor-app/internal/domain/model"
	domainrepo "corridor-app/internal/domain/repository"
	"corridor-app/internal/handler"
	pgdb "corridor-app/internal/infrastructure/database"
	fsinfra "corridor-app/internal/infrastructure/firestore"
	"corridor-app/internal/repository"
	"corridor-app/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	gridRepo, err := buildGridRepository()
	if err != nil {
		log.Fatalf("scored grid repository initialization failed: %v", err)
	}

	siteRepo := repository.NewGeoJSONSiteRepository(repository.SiteFiles{
		ZonesPath:        envOr("ZONES_PATH", "data/strategic_zones.geojson"),
		PlantsPath:       envOr("PLANTS_PATH", "data/generation_sites.geojson"),
		LoadCentersPath:  envOr("DATACENTERS_PATH", "data/datacenters.geojson"),
		TransmissionPath: os.Getenv("TRANSMISSION_PATH"),
	})

	runRepo, cleanup, err := buildRunRepository(ctx)
	if err != nil {
		log.Fatalf("run repository initialization failed: %v", err)
	}
	defer cleanup()

	extractionUseCase := usecase.NewCorridorExtractionUseCase(
		model.DefaultExtractionConfig(), gridRepo, siteRepo, runRepo)
	corridorHandler := handler.NewCorridorHandler(extractionUseCase)

	router := gin.Default()
	router.GET("/api/health", corridorHandler.Health)
	router.POST("/api/corridors/extract", corridorHandler.ExtractCorridors)
	router.GET("/api/corridors/:run_id", corridorHandler.GetRun)

	port := envOr("PORT", "8080")
	fmt.Printf("corridor-app server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// buildGridRepository picks the scored-grid backend from GRID_SOURCE:
// geojson (default), postgres, or supabase.
func buildGridRepository() (domainrepo.ScoredGridRepository, error) {
	switch envOr("GRID_SOURCE", "geojson") {
	case "postgres":
		client, err := pgdb.NewPostgreSQLClient()
		if err != nil {
			return nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, err
		}
		return repository.NewPostgresGridCellsRepository(client), nil
	case "supabase":
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, err
		}
		return repository.NewSupabaseGridCellsRepository(client), nil
	default:
		return repository.NewGeoJSONGridRepository(envOr("SCORED_GRID_PATH", "outputs/scored_grid.geojson")), nil
	}
}

// buildRunRepository uses Firestore when FIRESTORE_PROJECT_ID is set and
// an in-memory store otherwise.
func buildRunRepository(ctx context.Context) (domainrepo.CorridorRunRepository, func(), error) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		log.Printf("FIRESTORE_PROJECT_ID not set, corridor runs are kept in memory")
		return repository.NewMemoryCorridorRunRepository(), func() {}, nil
	}

	client, err := fsinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("closing Firestore client failed: %v", err)
		}
	}
	return repository.NewFirestoreCorridorRunRepository(client.GetClient()), cleanup, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
