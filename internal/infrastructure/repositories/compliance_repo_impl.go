package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/infrastructure/models"
)

// ComplianceReportRepository implements compliance report storage
type ComplianceReportRepository struct {
	db *gorm.DB
}

// NewComplianceReportRepository creates a new compliance report repository
func NewComplianceReportRepository(db *gorm.DB) *ComplianceReportRepository {
	return &ComplianceReportRepository{db: db}
}

// Create persists a generated report
func (r *ComplianceReportRepository) Create(ctx context.Context, report *entities.ComplianceReport) error {
	id := report.ID
	if id == "" {
		id = uuid.NewString()
	}
	m := &models.ComplianceReport{
		ID:          id,
		ReportType:  report.ReportType,
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		Metrics:     encodeJSON(report.Metrics, "{}"),
		Content:     report.Content,
		ContentType: report.ContentType,
		Size:        report.Size,
		ExpiresAt:   report.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	report.ID = m.ID
	report.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a report by ID. Expiry is the caller's concern.
func (r *ComplianceReportRepository) GetByID(ctx context.Context, id string) (*entities.ComplianceReport, error) {
	var m models.ComplianceReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	report := &entities.ComplianceReport{
		ID:          m.ID,
		ReportType:  m.ReportType,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Content:     m.Content,
		ContentType: m.ContentType,
		Size:        m.Size,
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
	}
	if err := decodeJSON(m.Metrics, &report.Metrics); err != nil {
		return nil, err
	}
	return report, nil
}

// CreateFile persists an exported data access file
func (r *ComplianceReportRepository) CreateFile(ctx context.Context, file *entities.ComplianceFile) error {
	id := file.ID
	if id == "" {
		id = uuid.NewString()
	}
	m := &models.ComplianceFile{
		ID:          id,
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Content:     file.Content,
		UserID:      file.UserID,
		RequestID:   file.RequestID,
		ExpiresAt:   file.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	file.ID = m.ID
	file.CreatedAt = m.CreatedAt
	return nil
}

// GetFileByID gets an exported file by ID. Expiry is the caller's concern.
func (r *ComplianceReportRepository) GetFileByID(ctx context.Context, id string) (*entities.ComplianceFile, error) {
	var m models.ComplianceFile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.ComplianceFile{
		ID:          m.ID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Content:     m.Content,
		UserID:      m.UserID,
		RequestID:   m.RequestID,
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
	}, nil
}
