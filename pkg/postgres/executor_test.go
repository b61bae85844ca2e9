package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txStub struct {
	pgx.Tx

	sql  []string
	args [][]any
}

func (t *txStub) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.sql = append(t.sql, sql)
	t.args = append(t.args, args)

	return pgconn.NewCommandTag("SELECT 1"), nil
}

func TestWithinTransaction_JoinsExisting(t *testing.T) {
	p := &Postgres{}
	tx := &txStub{}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))

	called := false
	err := p.WithinTransaction(ctx, func(ctx context.Context) error {
		called = true
		assert.Same(t, tx, p.GetExecutor(ctx))

		return p.AdvisoryXactLock(ctx, 42)
	})
	require.NoError(t, err)

	assert.True(t, called)
	require.Len(t, tx.sql, 1)
	assert.Contains(t, tx.sql[0], "pg_advisory_xact_lock")
	assert.Equal(t, []any{int64(42)}, tx.args[0])
}

func TestAdvisoryXactLock_RequiresTransaction(t *testing.T) {
	p := &Postgres{}

	err := p.AdvisoryXactLock(context.Background(), 42)
	assert.Error(t, err)
}
