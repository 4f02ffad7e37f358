package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// ConsentRepository implements consent record data operations
type ConsentRepository struct {
	db *gorm.DB
}

// NewConsentRepository creates a new consent repository
func NewConsentRepository(db *gorm.DB) *ConsentRepository {
	return &ConsentRepository{db: db}
}

// UpsertActive deactivates any active record for the same user and
// consent type, then writes the new decision as the active one. Old
// records are kept for the audit history.
func (r *ConsentRepository) UpsertActive(ctx context.Context, record *entities.ConsentRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.ConsentRecord{}).
			Where("user_id = ? AND consent_type = ? AND is_active = ?", record.UserID, record.ConsentType, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}

		m := &models.ConsentRecord{
			ID:           uuid.NewString(),
			UserID:       record.UserID,
			ConsentType:  record.ConsentType,
			ConsentGiven: record.ConsentGiven,
			IsActive:     true,
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		record.ID = m.ID
		record.IsActive = true
		record.CreatedAt = m.CreatedAt
		record.UpdatedAt = m.UpdatedAt
		return nil
	})
}

// CountActiveGivenBetween counts active granted consents created in the
// inclusive range
func (r *ConsentRepository) CountActiveGivenBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ConsentRecord{}).
		Where("is_active = ? AND consent_given = ?", true, true).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&count).Error
	return count, err
}
