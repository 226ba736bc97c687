package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fr0stylo/socialsync/internal/db/queries"
)

// WithTx runs fn inside one transaction. Any error returned by fn rolls the
// whole transaction back; a nil return commits it.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(queries.New(newTracedDBTX(tx, c.totals))); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			return errors.Join(err, rollbackErr)
		}
		return err
	}
	return tx.Commit()
}
