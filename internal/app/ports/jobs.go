package ports

import (
	"context"
	"time"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

// JobStore persists ingestion job records.
type JobStore interface {
	CreateJob(ctx context.Context, job domain.IngestionJob) error
	// FinishJob writes the final tally. It fails with ErrNotFound when the job
	// does not exist or has already been finished.
	FinishJob(ctx context.Context, jobID string, outcome domain.JobOutcome, completedAt time.Time) error
	GetJob(ctx context.Context, jobID string) (domain.IngestionJob, error)
}
