package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/db/queries"
)

// CatalogStore persists draft products and their media.
type CatalogStore struct {
	db catalogDatabase
}

// NewCatalogStore creates a catalog store on a shared database.
func NewCatalogStore(database catalogDatabase) *CatalogStore {
	return &CatalogStore{db: database}
}

func (s *CatalogStore) ProductExists(ctx context.Context, storeID, externalID string) (bool, error) {
	return productExists(ctx, s.db, storeID, externalID)
}

// WithinTx runs fn inside one IMMEDIATE transaction. A unique violation on the
// idempotency key surfaces as ports.ErrDuplicateProduct.
func (s *CatalogStore) WithinTx(ctx context.Context, fn func(tx ports.CatalogTx) error) error {
	err := s.db.WithTx(ctx, func(q *queries.Queries) error {
		return fn(&catalogTx{q: q})
	})
	if isProductKeyViolation(err) {
		return fmt.Errorf("%w: %v", ports.ErrDuplicateProduct, err)
	}
	return err
}

// GetProduct loads a product with its media in sort order.
func (s *CatalogStore) GetProduct(ctx context.Context, storeID, externalID string) (domain.Product, error) {
	row, err := s.db.GetProductByExternalID(ctx, queries.GetProductByExternalIDParams{
		StoreID:    storeID,
		Source:     domain.SourceSocial,
		ExternalID: externalID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ports.ErrNotFound
		}
		return domain.Product{}, err
	}

	product, err := mapProduct(row)
	if err != nil {
		return domain.Product{}, err
	}

	media, err := s.db.ListProductMedia(ctx, row.ID)
	if err != nil {
		return domain.Product{}, err
	}
	for _, m := range media {
		product.Media = append(product.Media, domain.ProductMediaLink{
			MediaObject: domain.MediaObject{
				ID:            m.ID,
				BlobURL:       m.BlobUrl,
				ContentType:   m.ContentType,
				SourceChildID: m.SourceChildID,
			},
			IsFeatured: m.IsFeatured != 0,
			SortOrder:  int(m.SortOrder),
		})
	}
	return product, nil
}

type catalogTx struct {
	q catalogQueries
}

func (t *catalogTx) ProductExists(ctx context.Context, storeID, externalID string) (bool, error) {
	return productExists(ctx, t.q, storeID, externalID)
}

func (t *catalogTx) InsertProduct(ctx context.Context, product ports.ProductRecord) error {
	_, err := t.q.CreateProduct(ctx, queries.CreateProductParams{
		ID:          product.ID,
		TenantID:    product.TenantID,
		StoreID:     product.StoreID,
		Source:      product.Source,
		ExternalID:  product.ExternalID,
		Title:       product.Title,
		Slug:        product.Slug,
		Description: nullString(product.Description),
		PriceMinor:  product.PriceMinor,
		Currency:    product.Currency,
		Status:      string(product.Status),
		Permalink:   product.Permalink,
		Variants:    "[]",
		CreatedAt:   formatTime(product.CreatedAt),
	})
	return err
}

func (t *catalogTx) InsertMediaObject(ctx context.Context, media ports.MediaObjectRecord) error {
	_, err := t.q.CreateMediaObject(ctx, queries.CreateMediaObjectParams{
		ID:            media.ID,
		TenantID:      media.TenantID,
		BlobUrl:       media.BlobURL,
		ContentType:   media.ContentType,
		SourceChildID: media.SourceChildID,
		CreatedAt:     formatTime(media.CreatedAt),
	})
	return err
}

func (t *catalogTx) LinkProductMedia(ctx context.Context, link ports.ProductMediaRecord) error {
	featured := int64(0)
	if link.IsFeatured {
		featured = 1
	}
	return t.q.CreateProductMedia(ctx, queries.CreateProductMediaParams{
		ProductID:     link.ProductID,
		MediaObjectID: link.MediaObjectID,
		IsFeatured:    featured,
		SortOrder:     int64(link.SortOrder),
	})
}

func (t *catalogTx) SetProductVariants(ctx context.Context, productID string, variants []domain.VariantEntry) error {
	raw, err := json.Marshal(variants)
	if err != nil {
		return fmt.Errorf("encode variants: %w", err)
	}
	return t.q.UpdateProductVariants(ctx, queries.UpdateProductVariantsParams{
		Variants: string(raw),
		ID:       productID,
	})
}

type existsQuerier interface {
	ProductExistsByExternalID(ctx context.Context, arg queries.ProductExistsByExternalIDParams) (int64, error)
}

func productExists(ctx context.Context, q existsQuerier, storeID, externalID string) (bool, error) {
	found, err := q.ProductExistsByExternalID(ctx, queries.ProductExistsByExternalIDParams{
		StoreID:    storeID,
		Source:     domain.SourceSocial,
		ExternalID: externalID,
	})
	if err != nil {
		return false, err
	}
	return found != 0, nil
}

func mapProduct(row queries.Product) (domain.Product, error) {
	product := domain.Product{
		ID:              row.ID,
		TenantID:        row.TenantID,
		StoreID:         row.StoreID,
		Source:          row.Source,
		ExternalID:      row.ExternalID,
		Title:           row.Title,
		Slug:            row.Slug,
		PriceMinorUnits: row.PriceMinor,
		CurrencyCode:    row.Currency,
		Status:          domain.ProductStatus(row.Status),
		Permalink:       row.Permalink,
		CreatedAt:       parseTime(row.CreatedAt),
	}
	if row.Description.Valid {
		value := row.Description.String
		product.Description = &value
	}
	if strings.TrimSpace(row.Variants) != "" {
		if err := json.Unmarshal([]byte(row.Variants), &product.Variants); err != nil {
			return domain.Product{}, fmt.Errorf("decode variants of %s: %w", row.ID, err)
		}
	}
	return product, nil
}

func isProductKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlitedriver.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, "products.external_id")
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func formatTime(value time.Time) string {
	return value.UTC().Format(timestampLayout)
}

func parseTime(value string) time.Time {
	for _, layout := range []string{timestampLayout, time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
