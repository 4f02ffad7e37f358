package models

import (
	"time"
)

type ComplianceReport struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	ReportType  string    `gorm:"type:varchar(50);not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Metrics     string    `gorm:"type:jsonb;default:'{}'"`
	Content     string    `gorm:"type:text"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	Size        int       `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

type ComplianceFile struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	FileName    string `gorm:"type:varchar(255);not null"`
	ContentType string `gorm:"type:varchar(100);not null"`
	Content     string `gorm:"type:text"`
	UserID      string `gorm:"type:varchar(255);index"`
	RequestID   string `gorm:"type:uuid;index"`
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// UserRegistration is the projection of KV user documents used for
// range counting. One row per registered account.
type UserRegistration struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"index"`
}
