package adminuser

import (
	"context"

	"portfolio-site/internal/domain"
)

// Repository persists and fetches admin operators.
type Repository interface {
	Create(ctx context.Context, u domain.AdminUser) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	SetPassword(ctx context.Context, id, passwordHash string) error
}
