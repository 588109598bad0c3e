package link

import (
	"context"

	"portfolio-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Link, error)
	Get(ctx context.Context, id int64) (*domain.Link, error)
	Create(ctx context.Context, l domain.Link) (*domain.Link, error)
	Update(ctx context.Context, id int64, l domain.Link) (*domain.Link, error)
	Delete(ctx context.Context, id int64) error
}
