package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/db/queries"
)

// JobStore persists ingestion job records.
type JobStore struct {
	db jobDatabase
}

// NewJobStore creates a job store on a shared database.
func NewJobStore(database jobDatabase) *JobStore {
	return &JobStore{db: database}
}

func (s *JobStore) CreateJob(ctx context.Context, job domain.IngestionJob) error {
	_, err := s.db.CreateIngestionJob(ctx, queries.CreateIngestionJobParams{
		ID:           job.ID,
		TenantID:     job.TenantID,
		StoreID:      job.StoreID,
		AccountID:    job.AccountID,
		Status:       string(job.Status),
		MediaFetched: int64(job.MediaFetched),
		StartedAt:    formatTime(job.StartedAt),
	})
	return err
}

// FinishJob only updates jobs still in processing, so a job is finished at most once.
func (s *JobStore) FinishJob(ctx context.Context, jobID string, outcome domain.JobOutcome, completedAt time.Time) error {
	errorMessage := sql.NullString{}
	if outcome.ErrorMessage != "" {
		errorMessage = sql.NullString{String: outcome.ErrorMessage, Valid: true}
	}
	updated, err := s.db.FinishIngestionJob(ctx, queries.FinishIngestionJobParams{
		Status:          string(outcome.Status),
		MediaFetched:    int64(outcome.MediaFetched),
		ProductsCreated: int64(outcome.ProductsCreated),
		ProductsSkipped: int64(outcome.ProductsSkipped),
		ItemsFailed:     int64(outcome.ItemsFailed),
		ErrorMessage:    errorMessage,
		CompletedAt:     sql.NullString{String: formatTime(completedAt), Valid: true},
		ID:              jobID,
	})
	if err != nil {
		return err
	}
	if updated == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (s *JobStore) GetJob(ctx context.Context, jobID string) (domain.IngestionJob, error) {
	row, err := s.db.GetIngestionJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.IngestionJob{}, ports.ErrNotFound
		}
		return domain.IngestionJob{}, err
	}

	job := domain.IngestionJob{
		ID:              row.ID,
		TenantID:        row.TenantID,
		StoreID:         row.StoreID,
		AccountID:       row.AccountID,
		Status:          domain.JobStatus(row.Status),
		MediaFetched:    int(row.MediaFetched),
		ProductsCreated: int(row.ProductsCreated),
		ProductsSkipped: int(row.ProductsSkipped),
		ItemsFailed:     int(row.ItemsFailed),
		ErrorMessage:    row.ErrorMessage.String,
		StartedAt:       parseTime(row.StartedAt),
	}
	if row.CompletedAt.Valid {
		completed := parseTime(row.CompletedAt.String)
		job.CompletedAt = &completed
	}
	return job, nil
}
