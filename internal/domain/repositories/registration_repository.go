package repositories

import (
	"context"
	"time"

	"gdpr-store.backend/internal/domain/entities"
)

// RegistrationRepository keeps the document-store projection of user
// sign-ups used by compliance range queries. The canonical user document
// lives in the KV bucket.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *entities.UserRegistration) error
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
}
