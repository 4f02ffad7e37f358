package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// applyCORSMiddleware configures cross-origin access. Origins come from the
// ALLOWED_ORIGINS env var (comma separated); when unset, any origin is
// reflected back, which keeps local frontends working out of the box.
func applyCORSMiddleware(r *gin.Engine) {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		cfg.AllowOrigins = strings.Split(allowed, ",")
	} else {
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	}
	r.Use(cors.New(cfg))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "gdpr-store-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
