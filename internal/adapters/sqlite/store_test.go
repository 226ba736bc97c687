package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/db"
	"github.com/fr0stylo/socialsync/internal/db/queries"
)

func openTestDB(t *testing.T) *db.Database {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "catalog-test"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	ctx := context.Background()
	if _, err := database.CreateStore(ctx, queries.CreateStoreParams{
		ID: "store-1", TenantID: "tenant-1", Name: "Main", DefaultCurrency: "KES",
	}); err != nil {
		t.Fatalf("create store: %v", err)
	}
	if _, err := database.CreateSocialAccount(ctx, queries.CreateSocialAccountParams{
		ID: "acct-1", TenantID: "tenant-1", StoreID: "store-1", ProviderAccountID: "17841400000", AccessToken: "token-1", Enabled: 1,
	}); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return database
}

func insertProduct(ctx context.Context, tx ports.CatalogTx, id, externalID string) error {
	return tx.InsertProduct(ctx, ports.ProductRecord{
		ID:         id,
		TenantID:   "tenant-1",
		StoreID:    "store-1",
		Source:     domain.SourceSocial,
		ExternalID: externalID,
		Title:      "Red Hat",
		Slug:       "red-hat-1a2b3c4d",
		PriceMinor: 2000,
		Currency:   "KES",
		Status:     domain.ProductStatusDraft,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
}

func TestCatalogStoreWritesProductWithMediaAndVariants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	store := NewCatalogStore(database)

	err := store.WithinTx(ctx, func(tx ports.CatalogTx) error {
		if err := insertProduct(ctx, tx, "prod-1", "media-1"); err != nil {
			return err
		}
		for i, child := range []string{"child-a", "child-b"} {
			mediaID := "mo-" + child
			if err := tx.InsertMediaObject(ctx, ports.MediaObjectRecord{
				ID: mediaID, TenantID: "tenant-1", BlobURL: "https://cdn.example/" + child, ContentType: "image/jpeg", SourceChildID: child, CreatedAt: time.Now(),
			}); err != nil {
				return err
			}
			if err := tx.LinkProductMedia(ctx, ports.ProductMediaRecord{
				ProductID: "prod-1", MediaObjectID: mediaID, IsFeatured: i == 0, SortOrder: i,
			}); err != nil {
				return err
			}
		}
		return tx.SetProductVariants(ctx, "prod-1", []domain.VariantEntry{
			{Label: "Option 1", SourceChildID: "child-a", MediaObjectID: "mo-child-a", MediaKind: domain.MediaKindImage},
			{Label: "Option 2", SourceChildID: "child-b", MediaObjectID: "mo-child-b", MediaKind: domain.MediaKindImage},
		})
	})
	if err != nil {
		t.Fatalf("write product: %v", err)
	}

	product, err := store.GetProduct(ctx, "store-1", "media-1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.Status != domain.ProductStatusDraft || product.PriceMinorUnits != 2000 {
		t.Fatalf("unexpected product mapping: %+v", product)
	}
	if product.Description != nil {
		t.Fatalf("expected nil description, got %q", *product.Description)
	}
	if len(product.Media) != 2 || !product.Media[0].IsFeatured || product.Media[1].IsFeatured {
		t.Fatalf("unexpected media links: %+v", product.Media)
	}
	if product.Media[1].SortOrder != 1 || product.Media[1].MediaObject.SourceChildID != "child-b" {
		t.Fatalf("unexpected media order: %+v", product.Media)
	}
	if len(product.Variants) != 2 || product.Variants[1].Label != "Option 2" {
		t.Fatalf("unexpected variants: %+v", product.Variants)
	}

	exists, err := store.ProductExists(ctx, "store-1", "media-1")
	if err != nil || !exists {
		t.Fatalf("expected product to exist, got %v err=%v", exists, err)
	}
	exists, err = store.ProductExists(ctx, "store-2", "media-1")
	if err != nil || exists {
		t.Fatalf("idempotency key must be store scoped, got %v err=%v", exists, err)
	}
}

func TestCatalogStoreRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	store := NewCatalogStore(database)
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(tx ports.CatalogTx) error {
		if err := insertProduct(ctx, tx, "prod-1", "media-1"); err != nil {
			return err
		}
		if err := tx.InsertMediaObject(ctx, ports.MediaObjectRecord{
			ID: "mo-1", TenantID: "tenant-1", BlobURL: "https://cdn.example/1", ContentType: "image/jpeg", CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	count, err := database.CountProductsByStore(ctx, "store-1")
	if err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave 0 products, got %d", count)
	}
	media, err := database.CountMediaObjects(ctx)
	if err != nil {
		t.Fatalf("count media: %v", err)
	}
	if media != 0 {
		t.Fatalf("expected rollback to leave 0 media objects, got %d", media)
	}
}

func TestCatalogStoreMapsUniqueViolationToDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	store := NewCatalogStore(database)

	if err := store.WithinTx(ctx, func(tx ports.CatalogTx) error {
		return insertProduct(ctx, tx, "prod-1", "media-1")
	}); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	err := store.WithinTx(ctx, func(tx ports.CatalogTx) error {
		return insertProduct(ctx, tx, "prod-2", "media-1")
	})
	if !errors.Is(err, ports.ErrDuplicateProduct) {
		t.Fatalf("expected ErrDuplicateProduct, got %v", err)
	}
}

func TestJobStoreFinishesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	store := NewJobStore(database)
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := store.CreateJob(ctx, domain.IngestionJob{
		ID: "job-1", TenantID: "tenant-1", StoreID: "store-1", AccountID: "acct-1",
		Status: domain.JobStatusProcessing, StartedAt: started,
	}); err != nil {
		t.Fatalf("create job: %v", err)
	}

	outcome := domain.JobOutcome{Status: domain.JobStatusCompleted, MediaFetched: 3, ProductsCreated: 2, ProductsSkipped: 1}
	if err := store.FinishJob(ctx, "job-1", outcome, started.Add(time.Minute)); err != nil {
		t.Fatalf("finish job: %v", err)
	}
	if err := store.FinishJob(ctx, "job-1", outcome, started.Add(2*time.Minute)); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected second finish to fail with ErrNotFound, got %v", err)
	}

	job, err := store.GetJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if job.Status != domain.JobStatusCompleted || job.ProductsCreated != 2 || job.ProductsSkipped != 1 || job.MediaFetched != 3 {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.CompletedAt == nil || !job.CompletedAt.Equal(started.Add(time.Minute)) {
		t.Fatalf("unexpected completed at: %v", job.CompletedAt)
	}
	if !job.StartedAt.Equal(started) {
		t.Fatalf("unexpected started at: %v", job.StartedAt)
	}

	if _, err := store.GetJob(ctx, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountStoreResolvesStoreContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	store := NewAccountStore(database)

	byProvider, err := store.GetAccountByProviderID(ctx, "17841400000")
	if err != nil {
		t.Fatalf("get by provider id: %v", err)
	}
	if byProvider.StoreID != "store-1" || byProvider.TenantID != "tenant-1" || byProvider.DefaultCurrency != "KES" || !byProvider.Enabled {
		t.Fatalf("unexpected account mapping: %+v", byProvider)
	}

	byStore, err := store.GetAccountByStoreID(ctx, "store-1")
	if err != nil {
		t.Fatalf("get by store id: %v", err)
	}
	if byStore.AccountID != "acct-1" || byStore.AccessToken != "token-1" {
		t.Fatalf("unexpected account mapping: %+v", byStore)
	}

	if _, err := store.GetAccountByStoreID(ctx, "store-unknown"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
