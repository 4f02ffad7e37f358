package repositories

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// ProductRepository defines catalog queries. The free-text term match is
// applied in-process by the caller; only structured filters are pushed
// down here.
type ProductRepository interface {
	Filter(ctx context.Context, category string, priceRange *entities.PriceRange, limit int) ([]*entities.Product, error)
}
