package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpr-store.backend/internal/domain/entities"
)

func TestProjectRepositoryRequirementRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createProjectRequirementTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	req := &entities.ProjectRequirement{
		ProjectName:           "shop-revamp",
		ProjectType:           "web-app",
		Complexity:            "medium",
		TechStack:             "go,postgres",
		DeadlineWeeks:         12,
		SuggestedArchitecture: "Modular monolith",
		ComplexityDetails: entities.ComplexityDetails{
			Timeline: "2-4 months",
			TeamSize: "2-4 developers",
			Features: []string{"user auth"},
		},
		Phases:                   []string{"Discovery", "Build"},
		Risks:                    []string{"Scope creep"},
		EstimatedCostRange:       entities.CostRange{Min: 15000, Max: 50000, Currency: "USD"},
		RecommendedTeamStructure: []string{"1x Tech Lead"},
		TextPlan:                 "PROJECT DEVELOPMENT PLAN",
		PlanFilename:             "shop-revamp-plan.txt",
		UserID:                   "user::a@mail.com",
	}
	require.NoError(t, repo.CreateRequirement(ctx, req))
	require.NotEmpty(t, req.ID)

	got, err := repo.ListRequirementsByUser(ctx, "user::a@mail.com", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "shop-revamp", got[0].ProjectName)
	assert.Equal(t, "2-4 months", got[0].ComplexityDetails.Timeline)
	assert.Equal(t, []string{"Discovery", "Build"}, got[0].Phases)
	assert.Equal(t, 15000, got[0].EstimatedCostRange.Min)
	assert.Equal(t, "USD", got[0].EstimatedCostRange.Currency)

	got, err = repo.ListRequirementsByUser(ctx, "user::b@mail.com", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProjectRepositoryTemplateRequests(t *testing.T) {
	db := newTestDB(t)
	createTemplateRequestTable(t, db)
	createAdvancedTemplateRequestTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	tr := &entities.TemplateRequest{
		UseCase:   "e-commerce",
		Templates: []string{"storefront", "checkout"},
		UserID:    "user::a@mail.com",
	}
	require.NoError(t, repo.CreateTemplateRequest(ctx, tr))
	assert.NotEmpty(t, tr.ID)

	atr := &entities.AdvancedTemplateRequest{
		BaseTemplate:     "storefront",
		Style:            "minimal",
		EnhancedTemplate: "storefront (minimal)",
		UserID:           "user::a@mail.com",
	}
	require.NoError(t, repo.CreateAdvancedTemplateRequest(ctx, atr))
	assert.NotEmpty(t, atr.ID)
}

func TestProjectRepositoryCreateProcessAnalysis(t *testing.T) {
	db := newTestDB(t)
	createProcessAnalysisTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	analysis := &entities.ProcessAnalysis{
		ProcessOverview: entities.ProcessOverview{
			Name:        "invoice approval",
			PrimaryGoal: "reduce-errors",
		},
		Strategy: entities.AutomationStrategy{
			ImplementationApproach: "phased rollout",
		},
		Phases:       map[string][]string{"phase_1": {"map current flow"}},
		NextSteps:    []string{"confirm stakeholders"},
		CurrentSteps: "manual spreadsheet",
		Frequency:    "daily",
		UserID:       "user::a@mail.com",
	}
	require.NoError(t, repo.CreateProcessAnalysis(ctx, analysis))
	assert.NotEmpty(t, analysis.ID)
	assert.False(t, analysis.CreatedAt.IsZero())
}
