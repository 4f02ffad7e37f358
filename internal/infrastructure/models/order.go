package models

import (
	"time"
)

type Order struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	UserID          string `gorm:"type:varchar(255);not null;index"`
	Status          string `gorm:"type:varchar(50);not null;index"`
	TotalAmount     float64
	PaymentMethod   string  `gorm:"type:jsonb;default:'{}'"`
	ShippingAddress string  `gorm:"type:jsonb;default:'{}'"`
	TrackingNumber  *string `gorm:"type:varchar(100)"`
	DeliveredAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}
