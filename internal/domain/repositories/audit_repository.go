package repositories

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// AuditLogRepository defines the append-only audit trail.
// Entries are never updated or deleted.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entities.AuditLogEntry) error
	List(ctx context.Context, q entities.AuditTrailQuery) ([]*entities.AuditLogEntry, error)
}

// AnalyticsRepository records privacy-preserving anonymous activity
type AnalyticsRepository interface {
	Append(ctx context.Context, entry *entities.AnonymousAnalyticsEntry) error
}
