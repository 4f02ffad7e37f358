package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// OrderRepository implements read-only order data access
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByUser returns a user's orders, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, q entities.OrdersQuery) ([]*entities.Order, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", q.UserID).
		Order("created_at DESC")
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var ms []models.Order
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		o, err := orderToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// CountCreatedBetween counts orders created in the inclusive range
func (r *OrderRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&count).Error
	return count, err
}

func orderToEntity(m *models.Order) (*entities.Order, error) {
	o := &entities.Order{
		ID:          m.ID,
		UserID:      m.UserID,
		Status:      entities.OrderStatus(m.Status),
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if err := decodeJSON(m.PaymentMethod, &o.PaymentMethod); err != nil {
		return nil, err
	}
	if err := decodeJSON(m.ShippingAddress, &o.ShippingAddress); err != nil {
		return nil, err
	}
	if m.TrackingNumber != nil {
		o.TrackingNumber = null.StringFrom(*m.TrackingNumber)
	}
	if m.DeliveredAt != nil {
		o.DeliveredAt = null.TimeFrom(*m.DeliveredAt)
	}
	return o, nil
}
