package main

import (
	"github.com/gin-gonic/gin"

	"gdpr-store.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	fileHandler       *handlers.FileHandler
	orderHandler      *handlers.OrderHandler
	consentHandler    *handlers.ConsentHandler
	complianceHandler *handlers.ComplianceHandler
	productHandler    *handlers.ProductHandler
	planHandler       *handlers.PlanHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public register/login, protected profile)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/profile", d.authMiddleware, d.authHandler.Profile)
		}

		// File storage routes
		files := v1.Group("/files")
		{
			files.POST("", d.fileHandler.Save)
			files.GET("", d.fileHandler.List)
			files.GET("/search", d.fileHandler.Search)
			files.POST("/bulk", d.fileHandler.BulkSave)
			files.GET("/:id", d.fileHandler.Info)
			files.GET("/:id/download", d.fileHandler.Download)
			files.PATCH("/:id/metadata", d.fileHandler.UpdateMetadata)
			files.DELETE("/:id", d.fileHandler.Delete)
		}

		// Order history and audit trail
		v1.GET("/orders", d.orderHandler.GetUserOrders)
		v1.GET("/audit", d.orderHandler.GetAuditTrail)

		// Consent and data subject requests
		v1.POST("/consents", d.consentHandler.UpdateConsent)
		v1.POST("/data-requests", d.consentHandler.SubmitDataRequest)

		// Compliance reporting
		compliance := v1.Group("/compliance")
		{
			compliance.POST("/reports", d.complianceHandler.GenerateReport)
			compliance.GET("/reports/:id/download", d.complianceHandler.DownloadReport)
			compliance.GET("/files/:id/download", d.complianceHandler.DownloadFile)
		}

		// Product search
		v1.POST("/products/search", d.productHandler.Search)

		// Project planning routes
		plans := v1.Group("/plans")
		{
			plans.GET("", d.planHandler.ListUserPlans)
			plans.POST("/requirements", d.planHandler.CollectRequirements)
			plans.GET("/requirements", d.planHandler.CollectRequirements)
			plans.POST("/download", d.planHandler.DownloadTextPlan)
			plans.GET("/download", d.planHandler.DownloadTextPlan)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.POST("/base", d.planHandler.GetBaseTemplates)
			templates.POST("/advanced", d.planHandler.GetAdvancedTemplate)
		}

		// Process automation analysis
		v1.POST("/automation/analyses", d.planHandler.AnalyzeProcess)
	}
}
