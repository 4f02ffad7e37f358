package repositories

import (
	"context"

	"gdpr-store.backend/internal/domain/entities"
)

// ProjectRepository stores generated plans, templates and analyses
type ProjectRepository interface {
	CreateRequirement(ctx context.Context, req *entities.ProjectRequirement) error
	ListRequirementsByUser(ctx context.Context, userID string, limit int) ([]*entities.ProjectRequirement, error)
	CreateTemplateRequest(ctx context.Context, req *entities.TemplateRequest) error
	CreateAdvancedTemplateRequest(ctx context.Context, req *entities.AdvancedTemplateRequest) error
	CreateProcessAnalysis(ctx context.Context, analysis *entities.ProcessAnalysis) error
}
