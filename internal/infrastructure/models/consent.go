package models

import (
	"time"
)

type ConsentRecord struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	UserID       string `gorm:"type:varchar(255);not null;index"`
	ConsentType  string `gorm:"type:varchar(100);not null;index"`
	ConsentGiven bool   `gorm:"not null"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DataRequest struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:varchar(255);not null;index"`
	RequestType string    `gorm:"type:varchar(50);not null"`
	Status      string    `gorm:"type:varchar(50);not null;index"`
	RequestDate time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
