package experience

import (
	"context"

	"portfolio-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	Get(ctx context.Context, id int64) (*domain.Experience, error)
	Create(ctx context.Context, e domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, id int64, e domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id int64) error
}
