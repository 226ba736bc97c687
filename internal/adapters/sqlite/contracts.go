package sqlite

import (
	"context"

	"github.com/fr0stylo/socialsync/internal/db/queries"
)

const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type catalogQueries interface {
	ProductExistsByExternalID(ctx context.Context, arg queries.ProductExistsByExternalIDParams) (int64, error)
	CreateProduct(ctx context.Context, arg queries.CreateProductParams) (queries.Product, error)
	CreateMediaObject(ctx context.Context, arg queries.CreateMediaObjectParams) (queries.MediaObject, error)
	CreateProductMedia(ctx context.Context, arg queries.CreateProductMediaParams) error
	UpdateProductVariants(ctx context.Context, arg queries.UpdateProductVariantsParams) error
}

type catalogDatabase interface {
	ProductExistsByExternalID(ctx context.Context, arg queries.ProductExistsByExternalIDParams) (int64, error)
	GetProductByExternalID(ctx context.Context, arg queries.GetProductByExternalIDParams) (queries.Product, error)
	ListProductMedia(ctx context.Context, productID string) ([]queries.ListProductMediaRow, error)
	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
}

type jobDatabase interface {
	CreateIngestionJob(ctx context.Context, arg queries.CreateIngestionJobParams) (queries.IngestionJob, error)
	FinishIngestionJob(ctx context.Context, arg queries.FinishIngestionJobParams) (int64, error)
	GetIngestionJob(ctx context.Context, id string) (queries.IngestionJob, error)
}

type accountDatabase interface {
	GetAccountContextByProviderID(ctx context.Context, providerAccountID string) (queries.GetAccountContextByProviderIDRow, error)
	GetAccountContextByStoreID(ctx context.Context, storeID string) (queries.GetAccountContextByStoreIDRow, error)
}
