package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/interfaces/http/response"
	"gdpr-store.backend/internal/usecases"
)

// PlanHandler handles project planning, template and automation
// endpoints
type PlanHandler struct {
	planUsecase *usecases.PlanUsecase
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planUsecase *usecases.PlanUsecase) *PlanHandler {
	return &PlanHandler{planUsecase: planUsecase}
}

// bindProjectParams reads the plan parameters from the JSON body on
// POST and from the query string on GET.
func bindProjectParams(c *gin.Context) (entities.ProjectParams, error) {
	var params entities.ProjectParams
	if c.Request.Method == http.MethodGet {
		params.ProjectName = c.Query("project_name")
		params.ProjectType = c.Query("project_type")
		params.Complexity = c.Query("complexity")
		params.TechStack = c.Query("tech_stack")
		params.UserID = c.Query("user_id")
		params.DeadlineWeeks, _ = strconv.Atoi(c.Query("deadline_weeks"))
		return params, nil
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		return params, domainerrors.BadRequest(err.Error())
	}
	return params, nil
}

// CollectRequirements generates and stores a project recommendation
// POST|GET /api/v1/plans/requirements
func (h *PlanHandler) CollectRequirements(c *gin.Context) {
	params, err := bindProjectParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.planUsecase.CollectRequirements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":      "Project requirements collected successfully",
		"requirements": req,
	})
}

// ListUserPlans lists a user's stored recommendations
// GET /api/v1/plans
func (h *PlanHandler) ListUserPlans(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	plans, err := h.planUsecase.ListUserPlans(c.Request.Context(), c.Query("user_id"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"plans": plans,
		"total": len(plans),
	})
}

// DownloadTextPlan streams the generated plan document
// POST|GET /api/v1/plans/download
func (h *PlanHandler) DownloadTextPlan(c *gin.Context) {
	params, err := bindProjectParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.planUsecase.DownloadTextPlan(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "text/plain", []byte(result.Plan))
}

// GetBaseTemplates serves the template list for a use case
// POST /api/v1/templates/base
func (h *PlanHandler) GetBaseTemplates(c *gin.Context) {
	var input struct {
		UseCase string `json:"use_case"`
		UserID  string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.planUsecase.GetBaseTemplates(c.Request.Context(), input.UseCase, input.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"use_case":  req.UseCase,
		"templates": req.Templates,
	})
}

// GetAdvancedTemplate serves a style-enhanced template
// POST /api/v1/templates/advanced
func (h *PlanHandler) GetAdvancedTemplate(c *gin.Context) {
	var input struct {
		BaseTemplate string `json:"base_template"`
		Style        string `json:"style"`
		UserID       string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.planUsecase.GetAdvancedTemplate(c.Request.Context(), input.BaseTemplate, input.Style, input.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"base_template":     req.BaseTemplate,
		"style":             req.Style,
		"enhanced_template": req.EnhancedTemplate,
	})
}

// AnalyzeProcess stores and returns an automation analysis
// POST /api/v1/automation/analyses
func (h *PlanHandler) AnalyzeProcess(c *gin.Context) {
	var input entities.ProcessAnalysisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	analysis, err := h.planUsecase.AnalyzeProcess(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Process analysis completed successfully",
		"analysis": analysis,
	})
}
