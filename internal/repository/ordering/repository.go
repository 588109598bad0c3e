package ordering

import (
	"context"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/reorder"
)

// Repository persists order_index values for any content collection.
type Repository interface {
	// MaxOrder returns the highest order value, or -1 for an empty collection.
	MaxOrder(ctx context.Context, coll domain.Collection) (int, error)
	// SetOrder writes one row's order value. A positive row.Version must
	// match the stored version.
	SetOrder(ctx context.Context, coll domain.Collection, row reorder.Row) error
	// Apply writes every row's order value in one transaction.
	Apply(ctx context.Context, coll domain.Collection, rows []reorder.Row) error
}
