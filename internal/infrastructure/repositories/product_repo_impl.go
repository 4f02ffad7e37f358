package repositories

import (
	"context"

	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// ProductRepository implements catalog data access
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Filter returns catalog items matching the structured filters. Free
// text matching is applied by the caller.
func (r *ProductRepository) Filter(ctx context.Context, category string, priceRange *entities.PriceRange, limit int) ([]*entities.Product, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if priceRange != nil {
		if priceRange.Min > 0 {
			query = query.Where("price >= ?", priceRange.Min)
		}
		if priceRange.Max > 0 {
			query = query.Where("price <= ?", priceRange.Max)
		}
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.Product
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		p := &entities.Product{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Category:    m.Category,
			Price:       m.Price,
			InStock:     m.InStock,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		}
		if err := decodeJSON(m.Tags, &p.Tags); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
