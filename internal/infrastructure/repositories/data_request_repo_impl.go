package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// DataRequestRepository implements data subject request operations
type DataRequestRepository struct {
	db *gorm.DB
}

// NewDataRequestRepository creates a new data request repository
func NewDataRequestRepository(db *gorm.DB) *DataRequestRepository {
	return &DataRequestRepository{db: db}
}

// Create persists a new data subject request
func (r *DataRequestRepository) Create(ctx context.Context, req *entities.DataRequest) error {
	m := &models.DataRequest{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		RequestType: req.RequestType,
		Status:      string(req.Status),
		RequestDate: req.RequestDate,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.ID = m.ID
	req.CreatedAt = m.CreatedAt
	req.UpdatedAt = m.UpdatedAt
	return nil
}

// CountBetween counts requests submitted in the inclusive range
func (r *DataRequestRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DataRequest{}).
		Where("request_date >= ? AND request_date <= ?", start, end).
		Count(&count).Error
	return count, err
}

// CountPendingBetween counts still-unprocessed requests in the range
func (r *DataRequestRepository) CountPendingBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DataRequest{}).
		Where("status = ?", string(entities.DataRequestPending)).
		Where("request_date >= ? AND request_date <= ?", start, end).
		Count(&count).Error
	return count, err
}
