package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-site/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, title, description, image_url, tags, links, order_index, version, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT ` + columns + ` FROM projects ORDER BY order_index ASC, id ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int64) (*domain.Project, error) {
	q := `SELECT ` + columns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	links, err := json.Marshal(p.Links)
	if err != nil {
		return nil, fmt.Errorf("encode links: %w", err)
	}
	q := `
INSERT INTO projects (title, description, image_url, tags, links, order_index)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns
	return scanProject(r.pool.QueryRow(ctx, q, p.Title, p.Description, p.ImageURL, tagsOrEmpty(p.Tags), links, p.OrderIndex))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, p domain.Project) (*domain.Project, error) {
	links, err := json.Marshal(p.Links)
	if err != nil {
		return nil, fmt.Errorf("encode links: %w", err)
	}
	q := `
UPDATE projects
SET title = $2, description = $3, image_url = $4, tags = $5, links = $6,
    version = version + 1, updated_at = now()
WHERE id = $1
RETURNING ` + columns
	out, err := scanProject(r.pool.QueryRow(ctx, q, id, p.Title, p.Description, p.ImageURL, tagsOrEmpty(p.Tags), links))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return out, err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p     domain.Project
		links []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Tags, &links, &p.OrderIndex, &p.Version, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Links = []domain.ProjectLink{}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &p.Links); err != nil {
			return nil, fmt.Errorf("decode links for project %d: %w", p.ID, err)
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
