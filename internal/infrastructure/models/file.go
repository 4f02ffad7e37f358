package models

import (
	"time"
)

type File struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Filename    string `gorm:"type:varchar(255);not null"`
	Content     string `gorm:"type:text;not null"`
	ContentType string `gorm:"type:varchar(100);not null;index"`
	Size        int    `gorm:"not null"`
	UserID      string `gorm:"type:varchar(255);not null;index"`
	Tags        string `gorm:"type:jsonb;default:'[]'"`
	IsPublic    bool   `gorm:"not null;default:false"`
	Metadata    string `gorm:"type:jsonb;default:'{}'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
