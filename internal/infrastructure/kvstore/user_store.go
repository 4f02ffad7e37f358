package kvstore

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// UserStore is the typed view of the bucket for user documents
type UserStore struct {
	bucket *Bucket
}

// NewUserStore creates a user store over a bucket
func NewUserStore(bucket *Bucket) *UserStore {
	return &UserStore{bucket: bucket}
}

// Get fetches a user document by key
func (s *UserStore) Get(ctx context.Context, key string) (*entities.User, error) {
	var user entities.User
	if err := s.bucket.Get(ctx, key, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert stores a new user document
func (s *UserStore) Insert(ctx context.Context, key string, user *entities.User) error {
	return s.bucket.Insert(ctx, key, user)
}

// Upsert replaces a user document
func (s *UserStore) Upsert(ctx context.Context, key string, user *entities.User) error {
	return s.bucket.Upsert(ctx, key, user)
}
