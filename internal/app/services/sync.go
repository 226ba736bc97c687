package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/observability"
)

const (
	// MaxSyncPosts bounds one pull batch.
	MaxSyncPosts     = 50
	defaultWorkers   = 4
	maxFailureReason = 200
)

// SyncOptions tunes the pull path.
type SyncOptions struct {
	MaxPosts int
	Workers  int
}

// ItemFailure is one post that could not be imported.
type ItemFailure struct {
	ExternalID string `json:"externalId"`
	Reason     string `json:"reason"`
}

// SyncResult summarizes one pull batch.
type SyncResult struct {
	JobID    string
	Status   domain.JobStatus
	Fetched  int
	Created  int
	Skipped  int
	Failures []ItemFailure
}

// Message is the human-readable summary returned to the trigger caller.
func (r SyncResult) Message() string {
	return fmt.Sprintf("Imported %d products successfully", r.Created)
}

// SyncOrchestrator runs a bounded pull of recent posts for one store.
type SyncOrchestrator struct {
	accounts ports.AccountStore
	provider ports.MediaProvider
	importer *PostImporter
	jobs     *JobTracker
	metrics  observability.PipelineMetrics
	opts     SyncOptions
	log      *slog.Logger
}

// NewSyncOrchestrator wires the pull path.
func NewSyncOrchestrator(accounts ports.AccountStore, provider ports.MediaProvider, importer *PostImporter, jobs *JobTracker, metrics observability.PipelineMetrics, opts SyncOptions, log *slog.Logger) *SyncOrchestrator {
	if opts.MaxPosts <= 0 || opts.MaxPosts > MaxSyncPosts {
		opts.MaxPosts = MaxSyncPosts
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if log == nil {
		log = slog.Default()
	}
	return &SyncOrchestrator{
		accounts: accounts,
		provider: provider,
		importer: importer,
		jobs:     jobs,
		metrics:  metrics,
		opts:     opts,
		log:      log,
	}
}

// Run imports the store's recent posts. A provider fetch failure marks the job
// failed and returns an error wrapping ErrProviderFetch together with the
// result carrying the job id. Per-post failures are collected, never returned.
// The batch ignores caller cancellation once started; provider timeouts bound it.
func (s *SyncOrchestrator) Run(ctx context.Context, storeID string) (SyncResult, error) {
	ctx = context.WithoutCancel(ctx)
	storeID = strings.TrimSpace(storeID)
	account, err := s.accounts.GetAccountByStoreID(ctx, storeID)
	if err != nil {
		return SyncResult{}, accountLookupError(err)
	}
	if !account.Enabled {
		return SyncResult{}, ErrAccountNotFound
	}

	ctx = observability.WithStoreIdentity(ctx, account.TenantID, account.StoreID)
	ctx, span := observability.StartPipelineSpan(ctx, "sync", attribute.String("socialsync.store_id", account.StoreID))
	defer span.End()

	jobID, err := s.jobs.Start(ctx, account, 0)
	if err != nil {
		span.RecordError(err)
		return SyncResult{}, err
	}
	log := s.log.With("job_id", jobID, "store_id", account.StoreID, "account_id", account.AccountID)
	result := SyncResult{JobID: jobID, Status: domain.JobStatusProcessing}

	posts, err := s.provider.ListMedia(ctx, account, s.opts.MaxPosts)
	if err != nil {
		span.RecordError(err)
		log.ErrorContext(ctx, "provider fetch failed", "error", err)
		if !errors.Is(err, ErrProviderFetch) {
			err = fmt.Errorf("%w: %w", ErrProviderFetch, err)
		}
		result.Status = domain.JobStatusFailed
		if finishErr := s.jobs.Finish(ctx, jobID, domain.JobOutcome{
			Status:       domain.JobStatusFailed,
			ErrorMessage: truncateReason(err.Error()),
		}); finishErr != nil {
			log.ErrorContext(ctx, "failed to finish ingestion job", "error", finishErr)
		}
		s.metrics.RecordSync(ctx, string(domain.JobStatusFailed))
		return result, err
	}
	if len(posts) > s.opts.MaxPosts {
		posts = posts[:s.opts.MaxPosts]
	}
	result.Fetched = len(posts)

	s.processAll(ctx, account, posts, &result)

	result.Status = domain.JobStatusCompleted
	if err := s.jobs.Finish(ctx, jobID, domain.JobOutcome{
		Status:          domain.JobStatusCompleted,
		MediaFetched:    result.Fetched,
		ProductsCreated: result.Created,
		ProductsSkipped: result.Skipped,
		ItemsFailed:     len(result.Failures),
	}); err != nil {
		span.RecordError(err)
		return result, err
	}
	s.metrics.RecordSync(ctx, string(domain.JobStatusCompleted))
	log.InfoContext(ctx, "sync finished",
		"fetched", result.Fetched,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", len(result.Failures),
	)
	return result, nil
}

// processAll imports posts on a bounded pool. Counts are tallied here and
// written to the job only once, by Run.
func (s *SyncOrchestrator) processAll(ctx context.Context, account domain.AccountContext, posts []domain.SourcePost, result *SyncResult) {
	var (
		mu       sync.Mutex
		failures []ItemFailure
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.opts.Workers)

	for _, post := range posts {
		group.Go(func() error {
			item, err := s.importer.Import(groupCtx, observability.PathSync, account, post)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				failures = append(failures, ItemFailure{ExternalID: post.ExternalID, Reason: truncateReason(err.Error())})
			case item.Outcome == OutcomeSkipped:
				result.Skipped++
			case item.Outcome == OutcomeCreated:
				result.Created++
			}
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].ExternalID < failures[j].ExternalID })
	result.Failures = failures
}

func truncateReason(reason string) string {
	return truncateRunes(reason, maxFailureReason)
}
