package repositories

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// FileRepository defines file document operations
type FileRepository interface {
	Create(ctx context.Context, file *entities.File) error
	// CreateBatch persists all files in one batched write.
	CreateBatch(ctx context.Context, files []*entities.File) error
	GetByID(ctx context.Context, id string) (*entities.File, error)
	List(ctx context.Context, q entities.ListFilesQuery) ([]*entities.File, error)
	Search(ctx context.Context, q entities.SearchFilesQuery) ([]*entities.File, error)
	UpdateMetadata(ctx context.Context, input *entities.UpdateFileMetadataInput) error
	Delete(ctx context.Context, id string) error
}
