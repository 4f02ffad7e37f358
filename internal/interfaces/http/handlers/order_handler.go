package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gdpr-store.backend/internal/domain/entities"
	"gdpr-store.backend/internal/interfaces/http/response"
	"gdpr-store.backend/internal/usecases"
)

// OrderHandler handles privacy-reduced order reads and the audit trail
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// GetUserOrders lists a user's orders with payment and address detail
// reduced
// GET /api/v1/orders
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	q := entities.OrdersQuery{
		UserID: c.Query("userId"),
		Status: c.Query("status"),
	}
	q.Limit, _ = strconv.Atoi(c.Query("limit"))

	orders, err := h.orderUsecase.GetUserOrders(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
		"userId": q.UserID,
	})
}

// GetAuditTrail lists a user's audit entries
// GET /api/v1/audit
func (h *OrderHandler) GetAuditTrail(c *gin.Context) {
	q := entities.AuditTrailQuery{
		UserID: c.Query("userId"),
		Action: c.Query("action"),
	}
	q.Limit, _ = strconv.Atoi(c.Query("limit"))

	entries, err := h.orderUsecase.GetAuditTrail(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"auditTrail": entries,
		"total":      len(entries),
		"userId":     q.UserID,
	})
}
