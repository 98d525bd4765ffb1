package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

const corridorRunsCollection = "corridorRuns"

// FirestoreCorridorRunRepository persists extraction runs in Firestore so
// a corridor set can be fetched again by run id.
type FirestoreCorridorRunRepository struct {
	client *firestore.Client
}

func NewFirestoreCorridorRunRepository(client *firestore.Client) repository.CorridorRunRepository {
	return &FirestoreCorridorRunRepository{client: client}
}

func (r *FirestoreCorridorRunRepository) SaveRun(ctx context.Context, run *model.CorridorRun) error {
	if run == nil || run.RunID == "" {
		return fmt.Errorf("corridor run is missing a run id")
	}

	_, err := r.client.Collection(corridorRunsCollection).Doc(run.RunID).Set(ctx, run)
	if err != nil {
		return fmt.Errorf("failed to save corridor run %s: %w", run.RunID, err)
	}

	log.Printf("corridor run saved: %s (%d cells)", run.RunID, len(run.Cells))
	return nil
}

func (r *FirestoreCorridorRunRepository) GetRun(ctx context.Context, runID string) (*model.CorridorRun, error) {
	doc, err := r.client.Collection(corridorRunsCollection).Doc(runID).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("corridor run %s not found", runID)
		}
		return nil, fmt.Errorf("failed to fetch corridor run %s: %w", runID, err)
	}

	var run model.CorridorRun
	if err := doc.DataTo(&run); err != nil {
		return nil, fmt.Errorf("failed to decode corridor run %s: %w", runID, err)
	}
	return &run, nil
}
