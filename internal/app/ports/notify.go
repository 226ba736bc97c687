package ports

import (
	"context"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

// ImportNotifier announces committed draft products to downstream consumers.
type ImportNotifier interface {
	ProductImported(ctx context.Context, product domain.Product) error
}
