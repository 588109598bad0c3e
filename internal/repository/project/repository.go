package project

import (
	"context"

	"portfolio-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id int64, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
