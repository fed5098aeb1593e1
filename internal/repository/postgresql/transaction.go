package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rona-hr/rona-backend-go/internal/pkg/database"
)

type txKey struct{}

// ContextWithTx makes repositories called with ctx run inside tx
func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
