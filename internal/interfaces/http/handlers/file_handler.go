package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/interfaces/http/response"
	"gdpr-store.backend/internal/usecases"
)

// FileHandler handles text file storage endpoints
type FileHandler struct {
	fileUsecase *usecases.FileUsecase
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileUsecase *usecases.FileUsecase) *FileHandler {
	return &FileHandler{fileUsecase: fileUsecase}
}

func downloadURL(fileID string) string {
	return fmt.Sprintf("/api/v1/files/%s/download", fileID)
}

// Save stores a single text file
// POST /api/v1/files
func (h *FileHandler) Save(c *gin.Context) {
	var input entities.SaveFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	file, err := h.fileUsecase.Save(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":      "File saved successfully",
		"id":           file.ID,
		"filename":     file.Filename,
		"size":         file.Size,
		"download_url": downloadURL(file.ID),
	})
}

// Download streams the stored file content as an attachment
// GET /api/v1/files/:id/download
func (h *FileHandler) Download(c *gin.Context) {
	file, err := h.fileUsecase.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Content-Length", strconv.Itoa(file.Size))
	c.Data(http.StatusOK, file.ContentType, []byte(file.Content))
}

// List returns a page of a user's files without content
// GET /api/v1/files
func (h *FileHandler) List(c *gin.Context) {
	q := entities.ListFilesQuery{
		UserID: c.Query("user_id"),
		Tags:   splitTags(c.Query("tags")),
	}
	q.Limit, _ = strconv.Atoi(c.Query("limit"))
	q.Page, _ = strconv.Atoi(c.Query("page"))

	files, err := h.fileUsecase.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"files": files,
		"total": len(files),
	})
}

// Info returns file metadata without content
// GET /api/v1/files/:id
func (h *FileHandler) Info(c *gin.Context) {
	file, err := h.fileUsecase.Info(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"file":         file,
		"download_url": downloadURL(file.ID),
	})
}

// UpdateMetadata applies a partial metadata update
// PATCH /api/v1/files/:id/metadata
func (h *FileHandler) UpdateMetadata(c *gin.Context) {
	var input entities.UpdateFileMetadataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	input.FileID = c.Param("id")

	if err := h.fileUsecase.UpdateMetadata(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "File metadata updated successfully"})
}

// Delete removes a file owned by the requesting user
// DELETE /api/v1/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.fileUsecase.Delete(c.Request.Context(), c.Param("id"), c.Query("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// Search filters stored files
// GET /api/v1/files/search
func (h *FileHandler) Search(c *gin.Context) {
	q := entities.SearchFilesQuery{
		UserID:      c.Query("user_id"),
		SearchTerm:  c.Query("search_term"),
		Tags:        splitTags(c.Query("tags")),
		ContentType: c.Query("content_type"),
	}
	q.Limit, _ = strconv.Atoi(c.Query("limit"))

	if v, ok := c.GetQuery("is_public"); ok {
		isPublic := v == "true"
		q.IsPublic = &isPublic
	}
	if from, err := parseQueryDate(c.Query("date_from")); err == nil {
		q.DateFrom = from
	}
	if to, err := parseQueryDate(c.Query("date_to")); err == nil {
		q.DateTo = to
	}

	files, err := h.fileUsecase.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"files": files,
		"total": len(files),
	})
}

// BulkSave stores several files in one request
// POST /api/v1/files/bulk
func (h *FileHandler) BulkSave(c *gin.Context) {
	var input entities.BulkSaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	results, err := h.fileUsecase.BulkSave(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%d files saved successfully", len(results)),
		"files":   results,
	})
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseQueryDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty date")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return nil, err
		}
	}
	return &t, nil
}
