package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gdpr-store.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserKeyKey is the context key for the authenticated user's
	// document key
	UserKeyKey = "userKey"
)

// AuthMiddleware verifies the bearer token and stores the user's
// document key in the gin context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(UserKeyKey, claims.UserKey)
		c.Next()
	}
}

// GetUserKey gets the authenticated user's document key from context
func GetUserKey(c *gin.Context) (string, bool) {
	key, exists := c.Get(UserKeyKey)
	if !exists {
		return "", false
	}
	return key.(string), true
}
