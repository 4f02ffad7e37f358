package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpr-store.backend/internal/usecases"
)

func newPlanRouter(projects *fakeProjectRepo) *gin.Engine {
	h := NewPlanHandler(usecases.NewPlanUsecase(projects))

	r := newTestRouter()
	r.POST("/api/v1/plans/requirements", h.CollectRequirements)
	r.GET("/api/v1/plans/requirements", h.CollectRequirements)
	r.GET("/api/v1/plans", h.ListUserPlans)
	r.POST("/api/v1/plans/download", h.DownloadTextPlan)
	r.GET("/api/v1/plans/download", h.DownloadTextPlan)
	r.POST("/api/v1/templates/base", h.GetBaseTemplates)
	r.POST("/api/v1/templates/advanced", h.GetAdvancedTemplate)
	r.POST("/api/v1/automation/analyses", h.AnalyzeProcess)
	return r
}

func TestPlanHandler_CollectRequirements_POSTAndGET(t *testing.T) {
	projects := &fakeProjectRepo{}
	r := newPlanRouter(projects)

	w := performJSON(r, http.MethodPost, "/api/v1/plans/requirements",
		`{"project_name":"Shop","project_type":"webapp","complexity":"medium","user_id":"u1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	req := body["requirements"].(map[string]interface{})
	assert.NotEmpty(t, req["id"])
	assert.Equal(t, "Shop_Project_Plan.txt", req["plan_filename"])
	assert.Equal(t, float64(4), req["deadline_weeks"])
	assert.Equal(t, "not specified", req["tech_stack"])

	w = performJSON(r, http.MethodGet,
		"/api/v1/plans/requirements?project_name=CLI+Tool&project_type=cli&complexity=simple", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, projects.requirements, 2)
}

func TestPlanHandler_CollectRequirements_MissingFields(t *testing.T) {
	r := newPlanRouter(&fakeProjectRepo{})

	w := performJSON(r, http.MethodPost, "/api/v1/plans/requirements",
		`{"project_name":"Shop"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestPlanHandler_ListUserPlans(t *testing.T) {
	projects := &fakeProjectRepo{}
	r := newPlanRouter(projects)

	performJSON(r, http.MethodPost, "/api/v1/plans/requirements",
		`{"project_name":"Shop","project_type":"webapp","complexity":"medium","user_id":"u1"}`)

	w := performJSON(r, http.MethodGet, "/api/v1/plans?user_id=u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["total"])

	w = performJSON(r, http.MethodGet, "/api/v1/plans", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_DownloadTextPlan(t *testing.T) {
	projects := &fakeProjectRepo{}
	r := newPlanRouter(projects)

	w := performJSON(r, http.MethodGet,
		"/api/v1/plans/download?project_name=My+Shop+2.0&project_type=webapp&complexity=high", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="My_Shop_2_0_Project_Plan.txt"`,
		w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "PROJECT DEVELOPMENT PLAN & GUIDELINES")

	// downloads are generated on the fly, nothing persisted
	assert.Empty(t, projects.requirements)
}

func TestPlanHandler_GetBaseTemplates(t *testing.T) {
	r := newPlanRouter(&fakeProjectRepo{})

	w := performJSON(r, http.MethodPost, "/api/v1/templates/base", `{"use_case":"webapp"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["templates"])

	w = performJSON(r, http.MethodPost, "/api/v1/templates/base", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing use_case parameter")
}

func TestPlanHandler_GetAdvancedTemplate(t *testing.T) {
	r := newPlanRouter(&fakeProjectRepo{})

	w := performJSON(r, http.MethodPost, "/api/v1/templates/advanced",
		`{"base_template":"rest api service"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "clean_code", body["style"])
	assert.Contains(t, body["enhanced_template"], "Additional Guidance:")
}

func TestPlanHandler_AnalyzeProcess(t *testing.T) {
	projects := &fakeProjectRepo{}
	r := newPlanRouter(projects)

	w := performJSON(r, http.MethodPost, "/api/v1/automation/analyses",
		`{"process_name":"invoicing","primary_goal":"reduce_errors","trigger_type":"email","trigger_details":"invoice arrives","success_outcome":"booked automatically"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	analysis := body["analysis"].(map[string]interface{})
	assert.NotEmpty(t, analysis["id"])
	assert.NotEmpty(t, analysis["automation_strategy"])
	require.Len(t, projects.analyses, 1)

	w = performJSON(r, http.MethodPost, "/api/v1/automation/analyses",
		`{"process_name":"invoicing"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}
