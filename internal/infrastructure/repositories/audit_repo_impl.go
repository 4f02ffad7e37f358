package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// AuditLogRepository implements the append-only audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Append writes one audit trail entry
func (r *AuditLogRepository) Append(ctx context.Context, entry *entities.AuditLogEntry) error {
	m := &models.AuditLog{
		ID:            uuid.NewString(),
		UserID:        entry.UserID,
		Action:        entry.Action,
		Details:       encodeJSON(entry.Details, "{}"),
		GDPRCompliant: entry.GDPRCompliant,
		Timestamp:     entry.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	return nil
}

// List returns audit entries matching the query, newest first
func (r *AuditLogRepository) List(ctx context.Context, q entities.AuditTrailQuery) ([]*entities.AuditLogEntry, error) {
	query := r.db.WithContext(ctx).Order("timestamp DESC")
	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var ms []models.AuditLog
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.AuditLogEntry, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		e := &entities.AuditLogEntry{
			ID:            m.ID,
			UserID:        m.UserID,
			Action:        m.Action,
			GDPRCompliant: m.GDPRCompliant,
			Timestamp:     m.Timestamp,
		}
		if err := decodeJSON(m.Details, &e.Details); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AnalyticsRepository implements anonymous activity recording
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Append writes one anonymous analytics entry. No user identity is
// accepted or stored.
func (r *AnalyticsRepository) Append(ctx context.Context, entry *entities.AnonymousAnalyticsEntry) error {
	m := &models.AnonymousAnalytics{
		ID:                uuid.NewString(),
		Action:            entry.Action,
		Details:           encodeJSON(entry.Details, "{}"),
		PrivacyPreserving: entry.PrivacyPreserving,
		Timestamp:         entry.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	return nil
}
