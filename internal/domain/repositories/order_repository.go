package repositories

import (
	"context"
	"time"

	"gdpr-store.backend/internal/domain/entities"
)

// OrderRepository defines read-only order access. Orders are written by
// an external system.
type OrderRepository interface {
	ListByUser(ctx context.Context, q entities.OrdersQuery) ([]*entities.Order, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}
