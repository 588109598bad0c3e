package ordering

import (
	"context"
	"fmt"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/reorder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type execQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) MaxOrder(ctx context.Context, coll domain.Collection) (int, error) {
	table, err := tableFor(coll)
	if err != nil {
		return 0, err
	}
	var max int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COALESCE(MAX(order_index), -1) FROM %s`, table)).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *postgresRepo) SetOrder(ctx context.Context, coll domain.Collection, row reorder.Row) error {
	table, err := tableFor(coll)
	if err != nil {
		return err
	}
	return setOrder(ctx, r.pool, table, row)
}

func (r *postgresRepo) Apply(ctx context.Context, coll domain.Collection, rows []reorder.Row) error {
	table, err := tableFor(coll)
	if err != nil {
		return err
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, row := range rows {
		if err := setOrder(ctx, tx, table, row); err != nil {
			return fmt.Errorf("row %d: %w", row.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func setOrder(ctx context.Context, db execQuerier, table string, row reorder.Row) error {
	q := fmt.Sprintf(`
UPDATE %s
SET order_index = $2, version = version + 1, updated_at = now()
WHERE id = $1 AND ($3 <= 0 OR version = $3)
`, table)
	cmd, err := db.Exec(ctx, q, row.ID, row.OrderIndex, row.Version)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := db.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table), row.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// tableFor only ever returns one of the fixed collection tables, which is what
// makes interpolating it into SQL safe.
func tableFor(coll domain.Collection) (string, error) {
	c, err := domain.ParseCollection(string(coll))
	if err != nil {
		return "", err
	}
	return c.Table(), nil
}
