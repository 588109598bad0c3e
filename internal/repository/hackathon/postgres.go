package hackathon

import (
	"context"
	"errors"

	"portfolio-site/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, title, banner_url, description, date, result, order_index, version, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Hackathon, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM hackathons ORDER BY order_index ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Hackathon{}
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int64) (*domain.Hackathon, error) {
	h, err := scanHackathon(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM hackathons WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return h, err
}

func (r *postgresRepo) Create(ctx context.Context, h domain.Hackathon) (*domain.Hackathon, error) {
	q := `
INSERT INTO hackathons (title, banner_url, description, date, result, order_index)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns
	return scanHackathon(r.pool.QueryRow(ctx, q, h.Title, h.BannerURL, h.Description, h.Date, h.Result, h.OrderIndex))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, h domain.Hackathon) (*domain.Hackathon, error) {
	q := `
UPDATE hackathons
SET title = $2, banner_url = $3, description = $4, date = $5, result = $6,
    version = version + 1, updated_at = now()
WHERE id = $1
RETURNING ` + columns
	out, err := scanHackathon(r.pool.QueryRow(ctx, q, id, h.Title, h.BannerURL, h.Description, h.Date, h.Result))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return out, err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hackathons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanHackathon(row pgx.Row) (*domain.Hackathon, error) {
	var h domain.Hackathon
	if err := row.Scan(&h.ID, &h.Title, &h.BannerURL, &h.Description, &h.Date, &h.Result, &h.OrderIndex, &h.Version, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}
