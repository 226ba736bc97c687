package domain

import "time"

// JobStatus is the lifecycle state of an ingestion job.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IngestionJob records one bounded pull batch.
type IngestionJob struct {
	ID              string
	TenantID        string
	StoreID         string
	AccountID       string
	Status          JobStatus
	MediaFetched    int
	ProductsCreated int
	ProductsSkipped int
	ItemsFailed     int
	ErrorMessage    string
	StartedAt       time.Time
	CompletedAt     *time.Time
}

// JobOutcome is the final tally written when a job finishes.
type JobOutcome struct {
	Status          JobStatus
	MediaFetched    int
	ProductsCreated int
	ProductsSkipped int
	ItemsFailed     int
	ErrorMessage    string
}
