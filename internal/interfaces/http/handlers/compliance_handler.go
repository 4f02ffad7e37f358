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

// ComplianceHandler handles compliance report endpoints
type ComplianceHandler struct {
	complianceUsecase *usecases.ComplianceUsecase
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceUsecase *usecases.ComplianceUsecase) *ComplianceHandler {
	return &ComplianceHandler{complianceUsecase: complianceUsecase}
}

// GenerateReport collects period metrics and persists the report
// POST /api/v1/compliance/reports
func (h *ComplianceHandler) GenerateReport(c *gin.Context) {
	var input entities.GenerateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	report, err := h.complianceUsecase.GenerateReport(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     "Compliance report generated successfully",
		"reportId":    report.ID,
		"metrics":     report.Metrics,
		"downloadUrl": fmt.Sprintf("/api/v1/compliance/reports/%s/download", report.ID),
	})
}

// DownloadReport streams a stored report as an attachment
// GET /api/v1/compliance/reports/:id/download
func (h *ComplianceHandler) DownloadReport(c *gin.Context) {
	report, err := h.complianceUsecase.DownloadReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("gdpr_compliance_report_%s.txt", report.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", strconv.Itoa(report.Size))
	c.Data(http.StatusOK, report.ContentType, []byte(report.Content))
}

// DownloadFile streams a data access export as an attachment
// GET /api/v1/compliance/files/:id/download
func (h *ComplianceHandler) DownloadFile(c *gin.Context) {
	file, err := h.complianceUsecase.DownloadComplianceFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Header("Content-Length", strconv.Itoa(len(file.Content)))
	c.Data(http.StatusOK, contentType, []byte(file.Content))
}
