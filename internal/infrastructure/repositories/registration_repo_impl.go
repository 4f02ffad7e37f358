package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// RegistrationRepository implements the sign-up projection used by
// compliance range counts
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create records one registration. Email is uniquely indexed, so a
// replayed registration fails loudly instead of double counting.
func (r *RegistrationRepository) Create(ctx context.Context, reg *entities.UserRegistration) error {
	m := &models.UserRegistration{
		ID:    uuid.NewString(),
		Email: reg.Email,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	reg.ID = m.ID
	reg.CreatedAt = m.CreatedAt
	return nil
}

// CountBetween counts registrations in the inclusive range
func (r *RegistrationRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserRegistration{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&count).Error
	return count, err
}
