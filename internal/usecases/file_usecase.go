package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/pkg/utils"
)

// AnonymousUserID is the owner recorded when no user identity is given
const AnonymousUserID = "anonymous"

// FileUsecase handles text file storage business logic
type FileUsecase struct {
	files repositories.FileRepository
}

// NewFileUsecase creates a new file usecase
func NewFileUsecase(files repositories.FileRepository) *FileUsecase {
	return &FileUsecase{files: files}
}

// Save validates and stores a single file
func (u *FileUsecase) Save(ctx context.Context, input *entities.SaveFileInput) (*entities.File, error) {
	if input.Filename == "" || input.Content == "" {
		return nil, domainerrors.BadRequest("Missing filename or content")
	}
	if len(input.Content) > entities.MaxFileSize {
		return nil, domainerrors.BadRequest("File too large. Maximum size is 1MB.")
	}

	file := newFileFromInput(input)
	if err := u.files.Create(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// Download returns the full file including content
func (u *FileUsecase) Download(ctx context.Context, fileID string) (*entities.File, error) {
	if fileID == "" {
		return nil, domainerrors.BadRequest("Missing file_id parameter")
	}
	file, err := u.files.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("File not found")
		}
		return nil, err
	}
	return file, nil
}

// List returns a page of a user's files without content
func (u *FileUsecase) List(ctx context.Context, q entities.ListFilesQuery) ([]*entities.File, error) {
	if q.UserID == "" {
		return nil, domainerrors.BadRequest("Missing user_id parameter")
	}
	q.Limit = utils.NormalizeLimit(q.Limit, 20)
	if q.Page < 0 {
		q.Page = 0
	}

	files, err := u.files.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return stripContents(files), nil
}

// Info returns file metadata without content
func (u *FileUsecase) Info(ctx context.Context, fileID string) (*entities.File, error) {
	file, err := u.Download(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return file.WithoutContent(), nil
}

// UpdateMetadata applies a partial metadata update
func (u *FileUsecase) UpdateMetadata(ctx context.Context, input *entities.UpdateFileMetadataInput) error {
	if input.FileID == "" {
		return domainerrors.BadRequest("Missing file_id parameter")
	}
	err := u.files.UpdateMetadata(ctx, input)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("File not found")
	}
	return err
}

// Delete removes a file after checking ownership. The check reads the
// current owner first; a concurrent delete between the read and the
// write surfaces as not found.
func (u *FileUsecase) Delete(ctx context.Context, fileID, userID string) error {
	if fileID == "" || userID == "" {
		return domainerrors.BadRequest("Missing file_id or user_id parameter")
	}

	file, err := u.files.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("File not found")
		}
		return err
	}
	if file.UserID != userID {
		return domainerrors.Forbidden("Unauthorized to delete this file")
	}

	err = u.files.Delete(ctx, fileID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("File not found")
	}
	return err
}

// Search applies structured filters in the store and the free-text term
// in-process over filename and metadata description.
func (u *FileUsecase) Search(ctx context.Context, q entities.SearchFilesQuery) ([]*entities.File, error) {
	q.Limit = utils.NormalizeLimit(q.Limit, 20)

	files, err := u.files.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	if q.SearchTerm != "" {
		term := strings.ToLower(q.SearchTerm)
		matched := files[:0]
		for _, f := range files {
			if strings.Contains(strings.ToLower(f.Filename), term) ||
				strings.Contains(strings.ToLower(f.Description()), term) {
				matched = append(matched, f)
			}
		}
		files = matched
	}
	return stripContents(files), nil
}

// BulkSave validates every item before writing any, then persists them
// in one batch. All files land or none do.
func (u *FileUsecase) BulkSave(ctx context.Context, input *entities.BulkSaveInput) ([]entities.BulkSaveResult, error) {
	if len(input.Files) == 0 {
		return nil, domainerrors.BadRequest("Missing or invalid files array")
	}
	if input.UserID == "" {
		return nil, domainerrors.BadRequest("Missing user_id")
	}
	if len(input.Files) > entities.MaxBulkFiles {
		return nil, domainerrors.BadRequest(fmt.Sprintf("Too many files. Maximum is %d files per batch.", entities.MaxBulkFiles))
	}

	files := make([]*entities.File, len(input.Files))
	for i := range input.Files {
		item := &input.Files[i]
		if item.Filename == "" || item.Content == "" {
			return nil, domainerrors.BadRequest(fmt.Sprintf("File %d missing filename or content", i))
		}
		if len(item.Content) > entities.MaxFileSize {
			return nil, domainerrors.BadRequest(fmt.Sprintf("File %d too large. Maximum size is 1MB.", i))
		}
		item.UserID = input.UserID
		files[i] = newFileFromInput(item)
	}

	if err := u.files.CreateBatch(ctx, files); err != nil {
		return nil, err
	}

	results := make([]entities.BulkSaveResult, len(files))
	for i, f := range files {
		results[i] = entities.BulkSaveResult{ID: f.ID, Filename: f.Filename, Size: f.Size}
	}
	return results, nil
}

func newFileFromInput(input *entities.SaveFileInput) *entities.File {
	contentType := input.ContentType
	if contentType == "" {
		contentType = "text/plain"
	}
	userID := input.UserID
	if userID == "" {
		userID = AnonymousUserID
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	now := time.Now().UTC()
	return &entities.File{
		Filename:    input.Filename,
		Content:     input.Content,
		ContentType: contentType,
		Size:        len(input.Content),
		UserID:      userID,
		Tags:        tags,
		IsPublic:    input.IsPublic,
		Metadata:    metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func stripContents(files []*entities.File) []*entities.File {
	out := make([]*entities.File, len(files))
	for i, f := range files {
		out[i] = f.WithoutContent()
	}
	return out
}
