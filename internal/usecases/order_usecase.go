package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/pkg/crypto"
	"gdpr-store.backend/pkg/logger"
	"gdpr-store.backend/pkg/utils"
)

// OrderUsecase exposes privacy-reduced order reads with audit logging
type OrderUsecase struct {
	orders repositories.OrderRepository
	audit  repositories.AuditLogRepository
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(orders repositories.OrderRepository, audit repositories.AuditLogRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders, audit: audit}
}

// GetUserOrders lists a user's orders with payment details reduced to
// type and last four, and the shipping address replaced by its one-way
// hash. Every access is recorded in the audit trail.
func (u *OrderUsecase) GetUserOrders(ctx context.Context, q entities.OrdersQuery) ([]*entities.Order, error) {
	if q.UserID == "" {
		return nil, domainerrors.BadRequest("Missing userId parameter")
	}
	q.Limit = utils.NormalizeLimit(q.Limit, 10)

	orders, err := u.orders.ListByUser(ctx, q)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.PaymentMethod = o.PaymentMethod.Redacted()
		if o.ShippingAddress.HashedAddress == "" {
			o.ShippingAddress.HashedAddress = crypto.HashAddress(
				o.ShippingAddress.Street,
				o.ShippingAddress.City,
				o.ShippingAddress.PostalCode,
				o.ShippingAddress.Country,
			)
		}
		o.ShippingAddress.Address = entities.Address{}
	}

	entry := &entities.AuditLogEntry{
		UserID: q.UserID,
		Action: entities.AuditActionOrdersAccessed,
		Details: map[string]interface{}{
			"orderCount":   len(orders),
			"accessMethod": "api_query",
		},
		GDPRCompliant: true,
		Timestamp:     time.Now().UTC(),
	}
	if err := u.audit.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to append audit entry",
			zap.String("action", entry.Action),
			zap.Error(err))
	}

	return orders, nil
}

// GetAuditTrail lists a user's audit entries, newest first
func (u *OrderUsecase) GetAuditTrail(ctx context.Context, q entities.AuditTrailQuery) ([]*entities.AuditLogEntry, error) {
	if q.UserID == "" {
		return nil, domainerrors.BadRequest("Missing userId parameter")
	}
	q.Limit = utils.NormalizeLimit(q.Limit, 20)
	return u.audit.List(ctx, q)
}
