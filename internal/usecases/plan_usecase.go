package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/internal/planner"
	"gdpr-store.backend/pkg/utils"
)

// PlanUsecase implements project planning, template lookups and
// automation analysis
type PlanUsecase struct {
	projects repositories.ProjectRepository
	now      func() time.Time
}

// NewPlanUsecase creates a new plan usecase
func NewPlanUsecase(projects repositories.ProjectRepository) *PlanUsecase {
	return &PlanUsecase{
		projects: projects,
		now:      time.Now,
	}
}

// TextPlanResult pairs a generated plan document with its download name
type TextPlanResult struct {
	Plan     string `json:"plan"`
	Filename string `json:"filename"`
}

// CollectRequirements generates and persists the full recommendation
// for a plan request
func (u *PlanUsecase) CollectRequirements(ctx context.Context, params entities.ProjectParams) (*entities.ProjectRequirement, error) {
	if params.ProjectName == "" || params.ProjectType == "" || params.Complexity == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}
	applyPlanDefaults(&params, 4)

	req := planner.CollectRequirements(params)
	req.TextPlan = planner.GenerateTextPlan(req, u.now().UTC())

	if err := u.projects.CreateRequirement(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListUserPlans returns the stored recommendations for a user, newest
// first
func (u *PlanUsecase) ListUserPlans(ctx context.Context, userID string, limit int) ([]*entities.ProjectRequirement, error) {
	if userID == "" {
		return nil, domainerrors.BadRequest("Missing user_id parameter")
	}
	return u.projects.ListRequirementsByUser(ctx, userID, utils.NormalizeLimit(limit, 10))
}

// DownloadTextPlan generates the plan document on the fly without
// persisting a requirement record
func (u *PlanUsecase) DownloadTextPlan(ctx context.Context, params entities.ProjectParams) (*TextPlanResult, error) {
	if params.ProjectName == "" || params.ProjectType == "" || params.Complexity == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}
	applyPlanDefaults(&params, 8)

	req := planner.CollectRequirements(params)
	return &TextPlanResult{
		Plan:     planner.GenerateTextPlan(req, u.now().UTC()),
		Filename: req.PlanFilename,
	}, nil
}

// GetBaseTemplates serves the templates for a use case and records the
// lookup
func (u *PlanUsecase) GetBaseTemplates(ctx context.Context, useCase, userID string) (*entities.TemplateRequest, error) {
	if useCase == "" {
		return nil, domainerrors.BadRequest("Missing use_case parameter")
	}
	req := &entities.TemplateRequest{
		ID:        uuid.NewString(),
		UseCase:   useCase,
		Templates: planner.BaseTemplates(useCase),
		UserID:    defaultUserID(userID),
		CreatedAt: u.now().UTC(),
	}
	if err := u.projects.CreateTemplateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetAdvancedTemplate enhances a base template with a style and records
// the request
func (u *PlanUsecase) GetAdvancedTemplate(ctx context.Context, baseTemplate, style, userID string) (*entities.AdvancedTemplateRequest, error) {
	if baseTemplate == "" {
		return nil, domainerrors.BadRequest("Missing base_template parameter")
	}
	if style == "" {
		style = planner.DefaultTemplateStyle
	}
	req := &entities.AdvancedTemplateRequest{
		ID:               uuid.NewString(),
		BaseTemplate:     baseTemplate,
		Style:            style,
		EnhancedTemplate: planner.EnhanceTemplate(baseTemplate, style),
		UserID:           defaultUserID(userID),
		CreatedAt:        u.now().UTC(),
	}
	if err := u.projects.CreateAdvancedTemplateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AnalyzeProcess produces and persists an automation analysis
func (u *PlanUsecase) AnalyzeProcess(ctx context.Context, input entities.ProcessAnalysisInput) (*entities.ProcessAnalysis, error) {
	if input.ProcessName == "" || input.PrimaryGoal == "" || input.TriggerType == "" ||
		input.TriggerDetails == "" || input.SuccessOutcome == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}
	if input.CurrentSteps == "" {
		input.CurrentSteps = "not specified"
	}
	if input.Stakeholders == "" {
		input.Stakeholders = "not specified"
	}
	if input.Frequency == "" {
		input.Frequency = "not specified"
	}
	if input.PainPoints == "" {
		input.PainPoints = "not specified"
	}
	input.UserID = defaultUserID(input.UserID)

	analysis := planner.AnalyzeProcess(input)
	analysis.CreatedAt = u.now().UTC()

	if err := u.projects.CreateProcessAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

func applyPlanDefaults(params *entities.ProjectParams, defaultWeeks int) {
	if params.TechStack == "" {
		params.TechStack = "not specified"
	}
	if params.DeadlineWeeks <= 0 {
		params.DeadlineWeeks = defaultWeeks
	}
	params.UserID = defaultUserID(params.UserID)
}

func defaultUserID(userID string) string {
	if userID == "" {
		return AnonymousUserID
	}
	return userID
}
