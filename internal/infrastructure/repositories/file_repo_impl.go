package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/infrastructure/models"
	"gdpr-store.backend/pkg/utils"
)

// FileRepository implements file document data operations
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create persists a new file document
func (r *FileRepository) Create(ctx context.Context, file *entities.File) error {
	m := fileToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	file.ID = m.ID
	file.CreatedAt = m.CreatedAt
	file.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateBatch persists all files in a single transaction. Either every
// file is written or none is.
func (r *FileRepository) CreateBatch(ctx context.Context, files []*entities.File) error {
	ms := make([]*models.File, len(files))
	for i, f := range files {
		ms[i] = fileToModel(f)
	}
	if err := r.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return err
	}
	for i, m := range ms {
		files[i].ID = m.ID
		files[i].CreatedAt = m.CreatedAt
		files[i].UpdatedAt = m.UpdatedAt
	}
	return nil
}

// GetByID gets a file document by ID
func (r *FileRepository) GetByID(ctx context.Context, id string) (*entities.File, error) {
	var m models.File
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return fileToEntity(&m)
}

// List returns a page of a user's files, newest first
func (r *FileRepository) List(ctx context.Context, q entities.ListFilesQuery) ([]*entities.File, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", q.UserID).
		Order("created_at DESC")
	// The tag filter runs in-process over the jsonb array, so paging
	// must happen after it or matching rows past the first unfiltered
	// page would be dropped.
	if len(q.Tags) == 0 {
		query = query.Limit(q.Limit).Offset(utils.PageOffset(q.Page, q.Limit))
	}

	var ms []models.File
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	files, err := filesToEntities(ms, q.Tags)
	if err != nil {
		return nil, err
	}
	if len(q.Tags) > 0 {
		files = pageSlice(files, q.Page, q.Limit)
	}
	return files, nil
}

// Search returns files matching the structured filters. The free-text
// term is matched against filename and metadata description in-process
// by the caller.
func (r *FileRepository) Search(ctx context.Context, q entities.SearchFilesQuery) ([]*entities.File, error) {
	query := r.db.WithContext(ctx)
	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.ContentType != "" {
		query = query.Where("content_type = ?", q.ContentType)
	}
	if q.DateFrom != nil {
		query = query.Where("created_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		query = query.Where("created_at <= ?", *q.DateTo)
	}
	if q.IsPublic != nil {
		query = query.Where("is_public = ?", *q.IsPublic)
	}
	query = query.Order("created_at DESC")
	// Same as List: the in-process tag filter has to see all candidate
	// rows before the limit applies.
	if q.Limit > 0 && len(q.Tags) == 0 {
		query = query.Limit(q.Limit)
	}

	var ms []models.File
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	files, err := filesToEntities(ms, q.Tags)
	if err != nil {
		return nil, err
	}
	if len(q.Tags) > 0 {
		files = pageSlice(files, 0, q.Limit)
	}
	return files, nil
}

// UpdateMetadata applies a partial metadata update. Nil fields are left
// unchanged.
func (r *FileRepository) UpdateMetadata(ctx context.Context, input *entities.UpdateFileMetadataInput) error {
	updates := map[string]interface{}{}
	if input.Tags != nil {
		updates["tags"] = encodeJSON(*input.Tags, "[]")
	}
	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
	}
	if input.Metadata != nil {
		updates["metadata"] = encodeJSON(input.Metadata, "{}")
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&models.File{}).Where("id = ?", input.FileID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a file document
func (r *FileRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.File{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func fileToModel(f *entities.File) *models.File {
	id := f.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &models.File{
		ID:          id,
		Filename:    f.Filename,
		Content:     f.Content,
		ContentType: f.ContentType,
		Size:        f.Size,
		UserID:      f.UserID,
		Tags:        encodeJSON(f.Tags, "[]"),
		IsPublic:    f.IsPublic,
		Metadata:    encodeJSON(f.Metadata, "{}"),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func fileToEntity(m *models.File) (*entities.File, error) {
	f := &entities.File{
		ID:          m.ID,
		Filename:    m.Filename,
		Content:     m.Content,
		ContentType: m.ContentType,
		Size:        m.Size,
		UserID:      m.UserID,
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if err := decodeJSON(m.Tags, &f.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSON(m.Metadata, &f.Metadata); err != nil {
		return nil, err
	}
	return f, nil
}

// filesToEntities converts rows and applies the tag filter. Tags live in
// a jsonb array, so the contains check happens here rather than in SQL.
func filesToEntities(ms []models.File, tags []string) ([]*entities.File, error) {
	files := make([]*entities.File, 0, len(ms))
	for i := range ms {
		f, err := fileToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		if len(tags) > 0 && !hasAnyTag(f.Tags, tags) {
			continue
		}
		files = append(files, f)
	}
	return files, nil
}

// pageSlice applies limit/offset to an in-process filtered result set
func pageSlice(files []*entities.File, page, limit int) []*entities.File {
	off := utils.PageOffset(page, limit)
	if off >= len(files) {
		return []*entities.File{}
	}
	files = files[off:]
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
