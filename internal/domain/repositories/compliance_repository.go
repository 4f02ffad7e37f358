package repositories

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// ComplianceReportRepository stores immutable generated reports and the
// exported files prepared for data access requests
type ComplianceReportRepository interface {
	Create(ctx context.Context, report *entities.ComplianceReport) error
	GetByID(ctx context.Context, id string) (*entities.ComplianceReport, error)
	CreateFile(ctx context.Context, file *entities.ComplianceFile) error
	GetFileByID(ctx context.Context, id string) (*entities.ComplianceFile, error)
}
