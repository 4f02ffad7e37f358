package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpr-store.backend/internal/domain/entities"
)

func TestOrderRepositoryListByUser(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	now := time.Now()
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, tracking_number, created_at, updated_at)
		VALUES ('o-1', 'user::a@mail.com', 'shipped', 49.99,
			'{"type":"credit_card","lastFour":"4242"}',
			'{"street":"1 Main St","city":"Berlin","postalCode":"10115","country":"DE","hashedAddress":"abc123"}',
			'TRACK-1', ?, ?)`, now.Add(-time.Minute), now.Add(-time.Minute))
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, created_at, updated_at)
		VALUES ('o-2', 'user::a@mail.com', 'pending', 10.00, '{"type":"paypal","lastFour":""}', '{}', ?, ?)`, now, now)
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, created_at, updated_at)
		VALUES ('o-3', 'user::b@mail.com', 'pending', 5.00, '{}', '{}', ?, ?)`, now, now)

	orders, err := repo.ListByUser(ctx, entities.OrdersQuery{UserID: "user::a@mail.com", Limit: 10})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o-2", orders[0].ID)
	assert.Equal(t, "o-1", orders[1].ID)
	assert.Equal(t, "credit_card", orders[1].PaymentMethod.Type)
	assert.Equal(t, "4242", orders[1].PaymentMethod.LastFour)
	assert.Equal(t, "Berlin", orders[1].ShippingAddress.City)
	assert.Equal(t, "abc123", orders[1].ShippingAddress.HashedAddress)
	require.True(t, orders[1].TrackingNumber.Valid)
	assert.Equal(t, "TRACK-1", orders[1].TrackingNumber.String)
	assert.False(t, orders[0].TrackingNumber.Valid)
}

func TestOrderRepositoryListByUserStatusFilter(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	now := time.Now()
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, created_at, updated_at)
		VALUES ('o-1', 'user::a@mail.com', 'delivered', 1.0, '{}', '{}', ?, ?)`, now, now)
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, created_at, updated_at)
		VALUES ('o-2', 'user::a@mail.com', 'pending', 2.0, '{}', '{}', ?, ?)`, now, now)

	orders, err := repo.ListByUser(ctx, entities.OrdersQuery{UserID: "user::a@mail.com", Status: "delivered", Limit: 10})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entities.OrderStatusDelivered, orders[0].Status)
}

func TestOrderRepositoryCountCreatedBetween(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	now := time.Now()
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, created_at, updated_at)
		VALUES ('o-1', 'u', 'pending', 1.0, '{}', '{}', ?, ?)`, now.AddDate(0, 0, -10), now)
	mustExec(t, db, `INSERT INTO orders (id, user_id, status, total_amount, payment_method, shipping_address, created_at, updated_at)
		VALUES ('o-2', 'u', 'pending', 1.0, '{}', '{}', ?, ?)`, now.AddDate(0, 0, -1), now)

	count, err := repo.CountCreatedBetween(ctx, now.AddDate(0, 0, -5), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountCreatedBetween(ctx, now.AddDate(0, 0, -30), now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
