package repositories

import (
	"context"
	"time"

	"gdpr-store.backend/internal/domain/entities"
)

// ConsentRepository defines consent record operations
type ConsentRepository interface {
	// UpsertActive records a consent decision, replacing any active
	// record for the same user and consent type.
	UpsertActive(ctx context.Context, record *entities.ConsentRecord) error
	CountActiveGivenBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// DataRequestRepository defines data subject request operations
type DataRequestRepository interface {
	Create(ctx context.Context, req *entities.DataRequest) error
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountPendingBetween(ctx context.Context, start, end time.Time) (int64, error)
}
