package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"type:varchar(100);not null;index"`
	Price       float64 `gorm:"not null;index"`
	Tags        string  `gorm:"type:jsonb;default:'[]'"`
	InStock     bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
