package ports

import (
	"context"
	"errors"
	"time"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateProduct indicates the idempotency key is already taken.
	ErrDuplicateProduct = errors.New("product already imported")
)

// CatalogStore is the storage contract of the dedup gate and catalog writer.
type CatalogStore interface {
	// ProductExists checks the (store, social, externalID) idempotency key.
	ProductExists(ctx context.Context, storeID, externalID string) (bool, error)
	// WithinTx runs fn in one transaction; a non-nil error rolls back every write made through tx.
	WithinTx(ctx context.Context, fn func(tx CatalogTx) error) error
}

// CatalogTx is the set of writes available inside one catalog transaction.
type CatalogTx interface {
	ProductExists(ctx context.Context, storeID, externalID string) (bool, error)
	InsertProduct(ctx context.Context, product ProductRecord) error
	InsertMediaObject(ctx context.Context, media MediaObjectRecord) error
	LinkProductMedia(ctx context.Context, link ProductMediaRecord) error
	SetProductVariants(ctx context.Context, productID string, variants []domain.VariantEntry) error
}

// ProductRecord is one product row insert.
type ProductRecord struct {
	ID          string
	TenantID    string
	StoreID     string
	Source      string
	ExternalID  string
	Title       string
	Slug        string
	Description *string
	PriceMinor  int64
	Currency    string
	Status      domain.ProductStatus
	Permalink   string
	CreatedAt   time.Time
}

// MediaObjectRecord is one media object row insert.
type MediaObjectRecord struct {
	ID            string
	TenantID      string
	BlobURL       string
	ContentType   string
	SourceChildID string
	CreatedAt     time.Time
}

// ProductMediaRecord links a media object to a product.
type ProductMediaRecord struct {
	ProductID     string
	MediaObjectID string
	IsFeatured    bool
	SortOrder     int
}
