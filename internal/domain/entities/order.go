package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// OrderStatus represents order fulfillment states
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is the stored payment detail of an order. Only type and
// last four digits ever leave the storage layer.
type PaymentMethod struct {
	Type       string `json:"type"`
	LastFour   string `json:"lastFour"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// Redacted returns the publicly exposable payment summary
func (p PaymentMethod) Redacted() PaymentMethod {
	return PaymentMethod{Type: p.Type, LastFour: p.LastFour}
}

// Address is a postal address
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// ShippingAddress carries the optional precomputed display hash
type ShippingAddress struct {
	Address
	HashedAddress string `json:"hashedAddress,omitempty"`
}

// Order represents a customer order. Orders are created by an external
// system; this service only reads them.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TrackingNumber  null.String     `json:"trackingNumber,omitempty"`
	DeliveredAt     null.Time       `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrdersQuery represents an order listing request
type OrdersQuery struct {
	UserID string
	Status string
	Limit  int
}
