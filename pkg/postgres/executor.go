package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// Executor is satisfied by both *pgxpool.Pool and pgx.Tx.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

func (p *Postgres) GetExecutor(ctx context.Context) Executor {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}

	return p.Pool
}

// WithinTransaction runs f inside a transaction carried by ctx. A ctx that
// already holds one joins it, so the outermost call owns commit and rollback.
func (p *Postgres) WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return f(ctx)
	}

	err := pgx.BeginTxFunc(ctx, p.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return f(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		return fmt.Errorf("Postgres - WithinTransaction - pgx.BeginTxFunc: %w", err)
	}

	return nil
}

// AdvisoryXactLock takes a transaction-scoped advisory lock on key. It must be
// called inside WithinTransaction; the lock is released on commit or rollback.
func (p *Postgres) AdvisoryXactLock(ctx context.Context, key int64) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return fmt.Errorf("Postgres - AdvisoryXactLock: no transaction in context")
	}

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
		return fmt.Errorf("Postgres - AdvisoryXactLock - tx.Exec: %w", err)
	}

	return nil
}
