package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to its HTTP shape. Validation errors carry
// a field list, everything unrecognized becomes an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		if len(appErr.Fields) > 0 {
			c.JSON(appErr.Code, gin.H{"errors": appErr.Fields})
			return
		}
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	logger.Error(c.Request.Context(), "unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
