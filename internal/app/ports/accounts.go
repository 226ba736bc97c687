package ports

import (
	"context"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

// AccountStore resolves connected provider accounts and their current access
// tokens. Token refresh happens elsewhere; this only reads what is stored.
type AccountStore interface {
	GetAccountByProviderID(ctx context.Context, providerAccountID string) (domain.AccountContext, error)
	GetAccountByStoreID(ctx context.Context, storeID string) (domain.AccountContext, error)
}
