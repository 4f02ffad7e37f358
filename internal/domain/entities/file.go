package entities

import "time"

// MaxFileSize is the largest accepted file content, enforced at ingress.
const MaxFileSize = 1024 * 1024 // 1 MiB

// MaxBulkFiles caps the number of items in one bulk save.
const MaxBulkFiles = 10

// File is a stored text file document
type File struct {
	ID          string                 `json:"id"`
	Filename    string                 `json:"filename"`
	Content     string                 `json:"content,omitempty"`
	ContentType string                 `json:"content_type"`
	Size        int                    `json:"size"`
	UserID      string                 `json:"user_id"`
	Tags        []string               `json:"tags"`
	IsPublic    bool                   `json:"is_public"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// WithoutContent returns a copy of the file with the content stripped,
// for list and info views.
func (f *File) WithoutContent() *File {
	c := *f
	c.Content = ""
	return &c
}

// Description returns the optional metadata description, if present
func (f *File) Description() string {
	if f.Metadata == nil {
		return ""
	}
	if d, ok := f.Metadata["description"].(string); ok {
		return d
	}
	return ""
}

// SaveFileInput represents input for saving a single file
type SaveFileInput struct {
	Filename    string                 `json:"filename"`
	Content     string                 `json:"content"`
	ContentType string                 `json:"content_type"`
	UserID      string                 `json:"user_id"`
	Tags        []string               `json:"tags"`
	IsPublic    bool                   `json:"is_public"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// BulkSaveInput represents input for a bulk save
type BulkSaveInput struct {
	Files  []SaveFileInput `json:"files"`
	UserID string          `json:"user_id"`
}

// BulkSaveResult describes one persisted item of a bulk save
type BulkSaveResult struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

// UpdateFileMetadataInput represents a partial metadata update.
// Nil pointers mean "leave unchanged".
type UpdateFileMetadataInput struct {
	FileID   string                 `json:"file_id"`
	Tags     *[]string              `json:"tags"`
	IsPublic *bool                  `json:"is_public"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ListFilesQuery represents a user file listing request
type ListFilesQuery struct {
	UserID string
	Tags   []string
	Limit  int
	Page   int
}

// SearchFilesQuery represents a file search request
type SearchFilesQuery struct {
	UserID      string
	SearchTerm  string
	Tags        []string
	ContentType string
	DateFrom    *time.Time
	DateTo      *time.Time
	IsPublic    *bool
	Limit       int
}
