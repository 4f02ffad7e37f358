package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/infrastructure/models"
)

// ProjectRepository stores generated plans, templates and analyses
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateRequirement persists a generated project recommendation
func (r *ProjectRepository) CreateRequirement(ctx context.Context, req *entities.ProjectRequirement) error {
	m := &models.ProjectRequirement{
		ID:                       uuid.NewString(),
		ProjectName:              req.ProjectName,
		ProjectType:              req.ProjectType,
		Complexity:               req.Complexity,
		TechStack:                req.TechStack,
		DeadlineWeeks:            req.DeadlineWeeks,
		SuggestedArchitecture:    req.SuggestedArchitecture,
		ComplexityDetails:        encodeJSON(req.ComplexityDetails, "{}"),
		Phases:                   encodeJSON(req.Phases, "[]"),
		Risks:                    encodeJSON(req.Risks, "[]"),
		EstimatedCostRange:       encodeJSON(req.EstimatedCostRange, "{}"),
		RecommendedTeamStructure: encodeJSON(req.RecommendedTeamStructure, "[]"),
		TextPlan:                 req.TextPlan,
		PlanFilename:             req.PlanFilename,
		UserID:                   req.UserID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.ID = m.ID
	req.CreatedAt = m.CreatedAt
	return nil
}

// ListRequirementsByUser returns a user's stored recommendations,
// newest first
func (r *ProjectRepository) ListRequirementsByUser(ctx context.Context, userID string, limit int) ([]*entities.ProjectRequirement, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.ProjectRequirement
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	reqs := make([]*entities.ProjectRequirement, 0, len(ms))
	for i := range ms {
		req, err := requirementToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// CreateTemplateRequest records a served template lookup
func (r *ProjectRepository) CreateTemplateRequest(ctx context.Context, req *entities.TemplateRequest) error {
	m := &models.TemplateRequest{
		ID:        uuid.NewString(),
		UseCase:   req.UseCase,
		Templates: encodeJSON(req.Templates, "[]"),
		UserID:    req.UserID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.ID = m.ID
	req.CreatedAt = m.CreatedAt
	return nil
}

// CreateAdvancedTemplateRequest records a served template enhancement
func (r *ProjectRepository) CreateAdvancedTemplateRequest(ctx context.Context, req *entities.AdvancedTemplateRequest) error {
	m := &models.AdvancedTemplateRequest{
		ID:               uuid.NewString(),
		BaseTemplate:     req.BaseTemplate,
		Style:            req.Style,
		EnhancedTemplate: req.EnhancedTemplate,
		UserID:           req.UserID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.ID = m.ID
	req.CreatedAt = m.CreatedAt
	return nil
}

// CreateProcessAnalysis persists a generated automation analysis
func (r *ProjectRepository) CreateProcessAnalysis(ctx context.Context, analysis *entities.ProcessAnalysis) error {
	m := &models.ProcessAnalysis{
		ID:              uuid.NewString(),
		ProcessOverview: encodeJSON(analysis.ProcessOverview, "{}"),
		Strategy:        encodeJSON(analysis.Strategy, "{}"),
		Phases:          encodeJSON(analysis.Phases, "{}"),
		RiskAssessment:  encodeJSON(analysis.RiskAssessment, "{}"),
		Success:         encodeJSON(analysis.Success, "{}"),
		NextSteps:       encodeJSON(analysis.NextSteps, "[]"),
		CurrentSteps:    analysis.CurrentSteps,
		Stakeholders:    analysis.Stakeholders,
		Frequency:       analysis.Frequency,
		PainPoints:      analysis.PainPoints,
		UserID:          analysis.UserID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	analysis.ID = m.ID
	analysis.CreatedAt = m.CreatedAt
	return nil
}

func requirementToEntity(m *models.ProjectRequirement) (*entities.ProjectRequirement, error) {
	req := &entities.ProjectRequirement{
		ID:                    m.ID,
		ProjectName:           m.ProjectName,
		ProjectType:           m.ProjectType,
		Complexity:            m.Complexity,
		TechStack:             m.TechStack,
		DeadlineWeeks:         m.DeadlineWeeks,
		SuggestedArchitecture: m.SuggestedArchitecture,
		TextPlan:              m.TextPlan,
		PlanFilename:          m.PlanFilename,
		UserID:                m.UserID,
		CreatedAt:             m.CreatedAt,
	}
	if err := decodeJSON(m.ComplexityDetails, &req.ComplexityDetails); err != nil {
		return nil, err
	}
	if err := decodeJSON(m.Phases, &req.Phases); err != nil {
		return nil, err
	}
	if err := decodeJSON(m.Risks, &req.Risks); err != nil {
		return nil, err
	}
	if err := decodeJSON(m.EstimatedCostRange, &req.EstimatedCostRange); err != nil {
		return nil, err
	}
	if err := decodeJSON(m.RecommendedTeamStructure, &req.RecommendedTeamStructure); err != nil {
		return nil, err
	}
	return req, nil
}
