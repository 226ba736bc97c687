package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	portmocks "github.com/fr0stylo/socialsync/internal/app/ports/mocks"
	"github.com/fr0stylo/socialsync/internal/observability"
)

func newSyncFixture(t *testing.T, provider *portmocks.MockMediaProvider) (*SyncOrchestrator, *JobTracker, func() (int64, int64)) {
	t.Helper()
	database, stores := openCatalogDB(t)
	metrics := observability.PipelineMetrics{}
	importer := NewPostImporter(stores.Catalog, nil, metrics, nil)
	jobs := NewJobTracker(stores.Jobs)
	syncer := NewSyncOrchestrator(stores.Accounts, provider, importer, jobs, metrics, SyncOptions{Workers: 2}, nil)
	return syncer, jobs, func() (int64, int64) { return countRows(t, database) }
}

func TestSyncImportsRecentPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.MatchedBy(func(a domain.AccountContext) bool {
		return a.StoreID == "store-1" && a.AccessToken == "token-1"
	}), MaxSyncPosts).Return([]domain.SourcePost{
		singlePost("p-1", "Red Hat @ 2000"),
		carouselPost("c-1", "c-1-a", "c-1-b"),
	}, nil).Once()

	syncer, jobs, counts := newSyncFixture(t, provider)
	result, err := syncer.Run(ctx, "store-1")
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if result.Status != domain.JobStatusCompleted || result.Fetched != 2 || result.Created != 2 || result.Skipped != 0 || len(result.Failures) != 0 {
		t.Fatalf("unexpected sync result: %+v", result)
	}
	if result.Message() != "Imported 2 products successfully" {
		t.Fatalf("unexpected message %q", result.Message())
	}
	if products, media := counts(); products != 2 || media != 3 {
		t.Fatalf("expected 2 products and 3 media, got %d and %d", products, media)
	}

	job, err := jobs.Get(ctx, result.JobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.Status != domain.JobStatusCompleted || job.MediaFetched != 2 || job.ProductsCreated != 2 || job.CompletedAt == nil {
		t.Fatalf("unexpected job record: %+v", job)
	}
}

func TestSyncSkipsAlreadyImportedPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.Anything, mock.Anything).Return([]domain.SourcePost{
		singlePost("p-1", "Red Hat @ 2000"),
	}, nil).Twice()

	syncer, _, counts := newSyncFixture(t, provider)
	if _, err := syncer.Run(ctx, "store-1"); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	result, err := syncer.Run(ctx, "store-1")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if result.Created != 0 || result.Skipped != 1 {
		t.Fatalf("expected a pure skip on re-sync, got %+v", result)
	}
	if products, _ := counts(); products != 1 {
		t.Fatalf("expected one product, got %d", products)
	}
}

func TestSyncCollectsPerItemFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.Anything, mock.Anything).Return([]domain.SourcePost{
		singlePost("p-1", "Red Hat @ 2000"),
		{CaptionText: "no id"},
		singlePost("p-3", "Scarf @ 700"),
	}, nil).Once()

	syncer, jobs, _ := newSyncFixture(t, provider)
	result, err := syncer.Run(ctx, "store-1")
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if result.Created != 2 || len(result.Failures) != 1 || result.Failures[0].Reason == "" {
		t.Fatalf("expected 2 created and 1 failure, got %+v", result)
	}

	job, err := jobs.Get(ctx, result.JobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.ItemsFailed != 1 || job.Status != domain.JobStatusCompleted {
		t.Fatalf("unexpected job record: %+v", job)
	}
}

func TestSyncMarksJobFailedOnProviderError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("status 503")).Once()

	syncer, jobs, counts := newSyncFixture(t, provider)
	result, err := syncer.Run(ctx, "store-1")
	if !errors.Is(err, ErrProviderFetch) {
		t.Fatalf("expected provider fetch error, got %v", err)
	}
	if result.JobID == "" || result.Status != domain.JobStatusFailed {
		t.Fatalf("expected failed result with job id, got %+v", result)
	}

	job, err := jobs.Get(ctx, result.JobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.Status != domain.JobStatusFailed || job.ErrorMessage == "" || job.CompletedAt == nil {
		t.Fatalf("unexpected job record: %+v", job)
	}
	if products, _ := counts(); products != 0 {
		t.Fatalf("expected no products, got %d", products)
	}

	if err := jobs.Finish(ctx, result.JobID, domain.JobOutcome{Status: domain.JobStatusCompleted}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected finished job to reject a second finish, got %v", err)
	}
}

func TestSyncUnknownStore(t *testing.T) {
	t.Parallel()
	provider := portmocks.NewMockMediaProvider(t)

	syncer, _, _ := newSyncFixture(t, provider)
	result, err := syncer.Run(context.Background(), "store-404")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
	if result.JobID != "" {
		t.Fatalf("expected no job for unknown store, got %q", result.JobID)
	}
}

func TestSyncTwoPostBatchProducesDrafts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, stores := openCatalogDB(t)

	shoes := carouselPost("c-shoes", "c-shoes-l", "c-shoes-r")
	shoes.CaptionText = "Shoe Set"
	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.Anything, mock.Anything).Return([]domain.SourcePost{
		singlePost("p-hat", "Red Hat @ 2000"),
		shoes,
	}, nil).Once()

	metrics := observability.PipelineMetrics{}
	jobs := NewJobTracker(stores.Jobs)
	syncer := NewSyncOrchestrator(stores.Accounts, provider, NewPostImporter(stores.Catalog, nil, metrics, nil), jobs, metrics, SyncOptions{}, nil)

	result, err := syncer.Run(ctx, "store-1")
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	job, err := jobs.Get(ctx, result.JobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.ProductsCreated != 2 {
		t.Fatalf("expected productsCreated 2, got %d", job.ProductsCreated)
	}

	hat, err := stores.Catalog.GetProduct(ctx, "store-1", "p-hat")
	if err != nil {
		t.Fatalf("load hat: %v", err)
	}
	if hat.Status != domain.ProductStatusDraft || len(hat.Media) != 1 || len(hat.Variants) != 0 || hat.PriceMinorUnits != 2000 {
		t.Fatalf("unexpected hat product: %+v", hat)
	}

	set, err := stores.Catalog.GetProduct(ctx, "store-1", "c-shoes")
	if err != nil {
		t.Fatalf("load shoe set: %v", err)
	}
	if set.Status != domain.ProductStatusDraft || len(set.Media) != 2 || len(set.Variants) != 2 {
		t.Fatalf("unexpected shoe set product: %+v", set)
	}
	if set.Title != "Shoe Set" || set.PriceMinorUnits != 0 {
		t.Fatalf("expected unpriced listing titled from caption, got %q %d", set.Title, set.PriceMinorUnits)
	}
}

func TestSyncFinishesJobWhenCallerGoesAway(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, domain.AccountContext, int) { cancel() }).
		Return([]domain.SourcePost{singlePost("p-1", "Red Hat @ 2000"), singlePost("p-2", "Blue Hat @ 2500")}, nil).
		Once()

	syncer, jobs, counts := newSyncFixture(t, provider)
	result, err := syncer.Run(ctx, "store-1")
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if result.Created != 2 || len(result.Failures) != 0 {
		t.Fatalf("expected both posts imported after cancellation, got %+v", result)
	}

	job, err := jobs.Get(context.Background(), result.JobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.Status != domain.JobStatusCompleted || job.ProductsCreated != 2 || job.CompletedAt == nil {
		t.Fatalf("expected completed job, got %+v", job)
	}
	if products, _ := counts(); products != 2 {
		t.Fatalf("expected 2 products, got %d", products)
	}
}

func TestSyncFailsJobWhenCallerGoesAwayDuringFetch(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := portmocks.NewMockMediaProvider(t)
	provider.EXPECT().ListMedia(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, domain.AccountContext, int) { cancel() }).
		Return(nil, errors.New("status 500")).
		Once()

	syncer, jobs, _ := newSyncFixture(t, provider)
	result, err := syncer.Run(ctx, "store-1")
	if !errors.Is(err, ErrProviderFetch) {
		t.Fatalf("expected provider fetch error, got %v", err)
	}

	job, err := jobs.Get(context.Background(), result.JobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.Status != domain.JobStatusFailed || job.CompletedAt == nil {
		t.Fatalf("expected failed job, got %+v", job)
	}
}
