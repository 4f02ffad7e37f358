package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/interfaces/http/response"
	"gdpr-store.backend/internal/usecases"
)

// ProductHandler handles the privacy-aware catalog search
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// Search filters the catalog
// POST /api/v1/products/search
func (h *ProductHandler) Search(c *gin.Context) {
	var input entities.SearchProductsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.productUsecase.Search(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
