package hackathon

import (
	"context"

	"portfolio-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Hackathon, error)
	Get(ctx context.Context, id int64) (*domain.Hackathon, error)
	Create(ctx context.Context, h domain.Hackathon) (*domain.Hackathon, error)
	Update(ctx context.Context, id int64, h domain.Hackathon) (*domain.Hackathon, error)
	Delete(ctx context.Context, id int64) error
}
