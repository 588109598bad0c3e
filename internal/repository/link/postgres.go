package link

import (
	"context"
	"errors"

	"portfolio-site/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, title, url, icon, order_index, version, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Link, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM links ORDER BY order_index ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int64) (*domain.Link, error) {
	l, err := scanLink(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM links WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return l, err
}

func (r *postgresRepo) Create(ctx context.Context, l domain.Link) (*domain.Link, error) {
	q := `
INSERT INTO links (title, url, icon, order_index)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns
	return scanLink(r.pool.QueryRow(ctx, q, l.Title, l.URL, l.Icon, l.OrderIndex))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, l domain.Link) (*domain.Link, error) {
	q := `
UPDATE links
SET title = $2, url = $3, icon = $4, version = version + 1, updated_at = now()
WHERE id = $1
RETURNING ` + columns
	out, err := scanLink(r.pool.QueryRow(ctx, q, id, l.Title, l.URL, l.Icon))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return out, err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLink(row pgx.Row) (*domain.Link, error) {
	var l domain.Link
	if err := row.Scan(&l.ID, &l.Title, &l.URL, &l.Icon, &l.OrderIndex, &l.Version, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
