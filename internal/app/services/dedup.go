package services

import (
	"context"
	"strings"

	"github.com/fr0stylo/socialsync/internal/app/ports"
)

type productLookup interface {
	ProductExists(ctx context.Context, storeID, externalID string) (bool, error)
}

// DedupGate answers whether a post was already imported for a store.
type DedupGate struct {
	store ports.CatalogStore
}

// NewDedupGate constructs a gate over the catalog store.
func NewDedupGate(store ports.CatalogStore) *DedupGate {
	return &DedupGate{store: store}
}

// AlreadyImported is an advisory pre-check. CatalogWriter repeats it inside
// its transaction, which is what actually prevents duplicates.
func (g *DedupGate) AlreadyImported(ctx context.Context, storeID, externalID string) (bool, error) {
	return alreadyImported(ctx, g.store, storeID, externalID)
}

func alreadyImported(ctx context.Context, lookup productLookup, storeID, externalID string) (bool, error) {
	return lookup.ProductExists(ctx, strings.TrimSpace(storeID), strings.TrimSpace(externalID))
}
