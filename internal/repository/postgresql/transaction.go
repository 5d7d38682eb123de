package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mesai-app/mesai-backend-go/internal/pkg/database"
)

// GetQuerier returns either an in-flight transaction or the pool.
// Mutations here are single independent statements, so callers normally
// get the pool; the hook keeps repositories usable inside a transaction
// should one ever carry it in the context.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
