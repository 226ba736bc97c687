package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
)

// JobTracker owns the ingestion job record of a pull batch. A job is written
// once when the batch starts and once when it ends.
type JobTracker struct {
	store ports.JobStore
	now   func() time.Time
	newID func() string
}

// NewJobTracker constructs a tracker over the job store.
func NewJobTracker(store ports.JobStore) *JobTracker {
	return &JobTracker{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Start records a processing job and returns its id.
func (t *JobTracker) Start(ctx context.Context, account domain.AccountContext, expectedCount int) (string, error) {
	job := domain.IngestionJob{
		ID:           t.newID(),
		TenantID:     account.TenantID,
		StoreID:      account.StoreID,
		AccountID:    account.AccountID,
		Status:       domain.JobStatusProcessing,
		MediaFetched: expectedCount,
		StartedAt:    t.now(),
	}
	if err := t.store.CreateJob(ctx, job); err != nil {
		return "", fmt.Errorf("start ingestion job: %w", err)
	}
	return job.ID, nil
}

// Finish writes the final tally. Finishing an unknown or already finished job
// returns ErrJobNotFound.
func (t *JobTracker) Finish(ctx context.Context, jobID string, outcome domain.JobOutcome) error {
	if outcome.Status != domain.JobStatusCompleted && outcome.Status != domain.JobStatusFailed {
		return fmt.Errorf("finish ingestion job: invalid status %q", outcome.Status)
	}
	if err := t.store.FinishJob(ctx, jobID, outcome, t.now()); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("finish ingestion job: %w", err)
	}
	return nil
}

// Get returns a stored job.
func (t *JobTracker) Get(ctx context.Context, jobID string) (domain.IngestionJob, error) {
	job, err := t.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return domain.IngestionJob{}, ErrJobNotFound
		}
		return domain.IngestionJob{}, err
	}
	return job, nil
}
