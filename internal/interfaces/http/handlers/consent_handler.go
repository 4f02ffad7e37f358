package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/interfaces/http/response"
	"gdpr-store.backend/internal/usecases"
)

// ConsentHandler handles consent and data subject request endpoints
type ConsentHandler struct {
	consentUsecase *usecases.ConsentUsecase
}

// NewConsentHandler creates a new consent handler
func NewConsentHandler(consentUsecase *usecases.ConsentUsecase) *ConsentHandler {
	return &ConsentHandler{consentUsecase: consentUsecase}
}

// UpdateConsent records a consent decision
// POST /api/v1/consents
func (h *ConsentHandler) UpdateConsent(c *gin.Context) {
	var input entities.UpdateConsentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.consentUsecase.UpdateConsent(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Consent updated successfully",
		"consent": record,
	})
}

// SubmitDataRequest opens a data subject request
// POST /api/v1/data-requests
func (h *ConsentHandler) SubmitDataRequest(c *gin.Context) {
	var input entities.SubmitDataRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.consentUsecase.SubmitDataRequest(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     "Data request submitted successfully",
		"requestId":   req.ID,
		"requestType": req.RequestType,
		"status":      req.Status,
	})
}
