package models

import (
	"time"
)

type AuditLog struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	UserID        string `gorm:"type:varchar(255);not null;index"`
	Action        string `gorm:"type:varchar(100);not null;index"`
	Details       string `gorm:"type:jsonb;default:'{}'"`
	GDPRCompliant bool   `gorm:"not null;default:true"`
	Timestamp     time.Time `gorm:"index"`
	CreatedAt     time.Time
}

type AnonymousAnalytics struct {
	ID                string `gorm:"type:uuid;primaryKey"`
	Action            string `gorm:"type:varchar(100);not null;index"`
	Details           string `gorm:"type:jsonb;default:'{}'"`
	PrivacyPreserving bool   `gorm:"not null;default:true"`
	Timestamp         time.Time
	CreatedAt         time.Time
}

func (AnonymousAnalytics) TableName() string {
	return "anonymous_analytics"
}
