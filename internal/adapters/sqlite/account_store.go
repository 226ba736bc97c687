package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/db/queries"
)

// AccountStore resolves connected social accounts with their store context.
type AccountStore struct {
	db accountDatabase
}

// NewAccountStore creates an account store on a shared database.
func NewAccountStore(database accountDatabase) *AccountStore {
	return &AccountStore{db: database}
}

func (s *AccountStore) GetAccountByProviderID(ctx context.Context, providerAccountID string) (domain.AccountContext, error) {
	row, err := s.db.GetAccountContextByProviderID(ctx, providerAccountID)
	if err != nil {
		return domain.AccountContext{}, notFound(err)
	}
	return mapAccount(queries.GetAccountContextByStoreIDRow(row)), nil
}

// GetAccountByStoreID returns the oldest enabled account of the store.
func (s *AccountStore) GetAccountByStoreID(ctx context.Context, storeID string) (domain.AccountContext, error) {
	row, err := s.db.GetAccountContextByStoreID(ctx, storeID)
	if err != nil {
		return domain.AccountContext{}, notFound(err)
	}
	return mapAccount(row), nil
}

func mapAccount(row queries.GetAccountContextByStoreIDRow) domain.AccountContext {
	return domain.AccountContext{
		AccountID:         row.ID,
		ProviderAccountID: row.ProviderAccountID,
		StoreID:           row.StoreID,
		TenantID:          row.TenantID,
		AccessToken:       row.AccessToken,
		DefaultCurrency:   row.DefaultCurrency,
		Enabled:           row.Enabled != 0,
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNotFound
	}
	return err
}
