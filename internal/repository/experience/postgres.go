package experience

import (
	"context"
	"errors"

	"portfolio-site/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, title, company, period, description, icon, order_index, version, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// List returns experiences in display order; rows sharing an order value
// show the newest first.
func (r *postgresRepo) List(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM experiences ORDER BY order_index ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int64) (*domain.Experience, error) {
	e, err := scanExperience(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM experiences WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return e, err
}

func (r *postgresRepo) Create(ctx context.Context, e domain.Experience) (*domain.Experience, error) {
	q := `
INSERT INTO experiences (title, company, period, description, icon, order_index)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns
	return scanExperience(r.pool.QueryRow(ctx, q, e.Title, e.Company, e.Period, e.Description, e.Icon, e.OrderIndex))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, e domain.Experience) (*domain.Experience, error) {
	q := `
UPDATE experiences
SET title = $2, company = $3, period = $4, description = $5, icon = $6,
    version = version + 1, updated_at = now()
WHERE id = $1
RETURNING ` + columns
	out, err := scanExperience(r.pool.QueryRow(ctx, q, id, e.Title, e.Company, e.Period, e.Description, e.Icon))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return out, err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	if err := row.Scan(&e.ID, &e.Title, &e.Company, &e.Period, &e.Description, &e.Icon, &e.OrderIndex, &e.Version, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
