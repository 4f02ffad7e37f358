package repositories

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// UserStore defines keyed access to user documents in the KV bucket.
// Get fails with ErrNotFound when the key is absent; Insert fails with
// ErrAlreadyExists when it is taken; Upsert always succeeds.
type UserStore interface {
	Get(ctx context.Context, key string) (*entities.User, error)
	Insert(ctx context.Context, key string, user *entities.User) error
	Upsert(ctx context.Context, key string, user *entities.User) error
}
