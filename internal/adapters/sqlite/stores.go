package sqlite

import (
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/db"
)

// Stores bundles the sqlite-backed ports over one shared database handle.
// The handle is owned by the caller.
type Stores struct {
	Catalog  *CatalogStore
	Jobs     *JobStore
	Accounts *AccountStore
}

// NewStores builds every storage port on database.
func NewStores(database *db.Database) Stores {
	return Stores{
		Catalog:  NewCatalogStore(database),
		Jobs:     NewJobStore(database),
		Accounts: NewAccountStore(database),
	}
}

var (
	_ ports.CatalogStore = (*CatalogStore)(nil)
	_ ports.JobStore     = (*JobStore)(nil)
	_ ports.AccountStore = (*AccountStore)(nil)
)
