package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/observability"
)

// Outcome is the per-post result of an import.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// ImportResult describes what happened to one post.
type ImportResult struct {
	ExternalID string
	Outcome    Outcome
	Product    *domain.Product
}

// PostImporter runs parse, resolve, dedup and write for one post. Both the
// webhook and the pull path go through it.
type PostImporter struct {
	gate     *DedupGate
	writer   *CatalogWriter
	notifier ports.ImportNotifier
	metrics  observability.PipelineMetrics
	log      *slog.Logger
	currency string
}

// ImporterOption customizes a PostImporter.
type ImporterOption func(*PostImporter)

// WithDefaultCurrency sets the currency used when the store has none configured.
func WithDefaultCurrency(code string) ImporterOption {
	return func(p *PostImporter) {
		p.currency = code
	}
}

// NewPostImporter wires the per-post pipeline. notifier may be nil.
func NewPostImporter(catalog ports.CatalogStore, notifier ports.ImportNotifier, metrics observability.PipelineMetrics, log *slog.Logger, opts ...ImporterOption) *PostImporter {
	if log == nil {
		log = slog.Default()
	}
	importer := &PostImporter{
		gate:     NewDedupGate(catalog),
		writer:   NewCatalogWriter(catalog),
		notifier: notifier,
		metrics:  metrics,
		log:      log,
		currency: FallbackCurrency,
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

// Import materializes post for the account's store. The returned error always
// wraps ErrItemProcessing; duplicates are a skip, not an error.
func (p *PostImporter) Import(ctx context.Context, path string, account domain.AccountContext, post domain.SourcePost) (ImportResult, error) {
	ctx, span := observability.StartPipelineSpan(ctx, "import_post",
		attribute.String("socialsync.path", path),
		attribute.String("socialsync.external_id", post.ExternalID),
	)
	defer span.End()

	result := ImportResult{ExternalID: post.ExternalID, Outcome: OutcomeFailed}
	log := p.log.With("store_id", account.StoreID, "tenant_id", account.TenantID, "external_id", post.ExternalID)

	outcome, err := p.importPost(ctx, account, post)
	if err != nil {
		span.RecordError(err)
		p.metrics.RecordOutcome(ctx, path, string(OutcomeFailed))
		log.WarnContext(ctx, "post import failed", "outcome", OutcomeFailed, "error", err)
		return result, fmt.Errorf("%w: %s: %w", ErrItemProcessing, post.ExternalID, err)
	}

	if outcome.Skipped {
		result.Outcome = OutcomeSkipped
		p.metrics.RecordOutcome(ctx, path, string(OutcomeSkipped))
		log.InfoContext(ctx, "post already imported", "outcome", OutcomeSkipped)
		return result, nil
	}

	product := outcome.Product
	result.Outcome = OutcomeCreated
	result.Product = &product
	span.SetAttributes(attribute.String("socialsync.product_id", product.ID))
	p.metrics.RecordOutcome(ctx, path, string(OutcomeCreated))
	log.InfoContext(ctx, "draft product created", "outcome", OutcomeCreated, "product_id", product.ID, "media", len(product.Media))

	if p.notifier != nil {
		if err := p.notifier.ProductImported(ctx, product); err != nil {
			log.WarnContext(ctx, "product import notification failed", "product_id", product.ID, "error", err)
		}
	}
	return result, nil
}

func (p *PostImporter) importPost(ctx context.Context, account domain.AccountContext, post domain.SourcePost) (WriteOutcome, error) {
	if post.ExternalID == "" {
		return WriteOutcome{}, fmt.Errorf("post has no external id")
	}

	currency := account.DefaultCurrency
	if currency == "" {
		currency = p.currency
	}
	listing := ParseCaption(post.CaptionText, currency)
	media := ResolveMedia(post)

	exists, err := p.gate.AlreadyImported(ctx, account.StoreID, post.ExternalID)
	if err != nil {
		return WriteOutcome{}, fmt.Errorf("dedup check: %w", err)
	}
	if exists {
		return WriteOutcome{Skipped: true}, nil
	}

	return p.writer.WriteProduct(ctx, WriteRequest{
		StoreID:    account.StoreID,
		TenantID:   account.TenantID,
		ExternalID: post.ExternalID,
		Permalink:  post.Permalink,
		Carousel:   post.IsCarousel(),
		Listing:    listing,
		Media:      media,
	})
}
