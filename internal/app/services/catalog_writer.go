package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
)

// errAlreadyImported aborts the transaction when the in-transaction re-check hits.
var errAlreadyImported = errors.New("already imported")

// WriteRequest is everything the writer needs; media must already be resolved.
type WriteRequest struct {
	StoreID    string
	TenantID   string
	ExternalID string
	Permalink  string
	Carousel   bool
	Listing    domain.ParsedListing
	Media      []domain.ResolvedMedia
}

// WriteOutcome is either a created product or a skip.
type WriteOutcome struct {
	Product domain.Product
	Skipped bool
}

// CatalogWriter materializes one post as a draft product with its media in a
// single transaction.
type CatalogWriter struct {
	store ports.CatalogStore
	now   func() time.Time
	newID func() string
	slug  func(string) string
}

// NewCatalogWriter constructs a writer over the catalog store.
func NewCatalogWriter(store ports.CatalogStore) *CatalogWriter {
	return &CatalogWriter{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		slug:  Slugify,
	}
}

// WriteProduct writes the product, media objects, links and variants
// together. Any error rolls back every row; a duplicate yields Skipped.
func (w *CatalogWriter) WriteProduct(ctx context.Context, req WriteRequest) (WriteOutcome, error) {
	if strings.TrimSpace(req.StoreID) == "" || strings.TrimSpace(req.ExternalID) == "" {
		return WriteOutcome{}, fmt.Errorf("write product: store id and external id are required")
	}

	createdAt := w.now()
	product := domain.Product{
		ID:              w.newID(),
		TenantID:        req.TenantID,
		StoreID:         req.StoreID,
		Source:          domain.SourceSocial,
		ExternalID:      req.ExternalID,
		Title:           req.Listing.Title,
		Slug:            w.slug(req.Listing.Title),
		Description:     req.Listing.Description,
		PriceMinorUnits: req.Listing.PriceMinorUnits,
		CurrencyCode:    req.Listing.CurrencyCode,
		Status:          domain.ProductStatusDraft,
		Permalink:       req.Permalink,
		CreatedAt:       createdAt,
	}

	err := w.store.WithinTx(ctx, func(tx ports.CatalogTx) error {
		exists, err := alreadyImported(ctx, tx, req.StoreID, req.ExternalID)
		if err != nil {
			return fmt.Errorf("dedup re-check: %w", err)
		}
		if exists {
			return errAlreadyImported
		}

		if err := tx.InsertProduct(ctx, ports.ProductRecord{
			ID:          product.ID,
			TenantID:    product.TenantID,
			StoreID:     product.StoreID,
			Source:      product.Source,
			ExternalID:  product.ExternalID,
			Title:       product.Title,
			Slug:        product.Slug,
			Description: product.Description,
			PriceMinor:  product.PriceMinorUnits,
			Currency:    product.CurrencyCode,
			Status:      product.Status,
			Permalink:   product.Permalink,
			CreatedAt:   createdAt,
		}); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}

		links := make([]domain.ProductMediaLink, 0, len(req.Media))
		var variants []domain.VariantEntry
		for index, media := range req.Media {
			object := domain.MediaObject{
				ID:            w.newID(),
				BlobURL:       media.URL,
				ContentType:   media.ContentType,
				SourceChildID: media.SourceChildID,
			}
			if err := tx.InsertMediaObject(ctx, ports.MediaObjectRecord{
				ID:            object.ID,
				TenantID:      req.TenantID,
				BlobURL:       object.BlobURL,
				ContentType:   object.ContentType,
				SourceChildID: object.SourceChildID,
				CreatedAt:     createdAt,
			}); err != nil {
				return fmt.Errorf("insert media %d: %w", index, err)
			}

			link := domain.ProductMediaLink{MediaObject: object, IsFeatured: index == 0, SortOrder: index}
			if err := tx.LinkProductMedia(ctx, ports.ProductMediaRecord{
				ProductID:     product.ID,
				MediaObjectID: object.ID,
				IsFeatured:    link.IsFeatured,
				SortOrder:     link.SortOrder,
			}); err != nil {
				return fmt.Errorf("link media %d: %w", index, err)
			}
			links = append(links, link)

			if req.Carousel {
				variants = append(variants, domain.VariantEntry{
					Label:         fmt.Sprintf("Option %d", index+1),
					SourceChildID: media.SourceChildID,
					MediaObjectID: object.ID,
					MediaKind:     media.Kind,
				})
			}
		}

		if len(variants) > 0 {
			if err := tx.SetProductVariants(ctx, product.ID, variants); err != nil {
				return fmt.Errorf("set variants: %w", err)
			}
		}

		product.Media = links
		product.Variants = variants
		return nil
	})

	switch {
	case err == nil:
		return WriteOutcome{Product: product}, nil
	case errors.Is(err, errAlreadyImported), errors.Is(err, ports.ErrDuplicateProduct):
		return WriteOutcome{Skipped: true}, nil
	default:
		return WriteOutcome{}, err
	}
}
