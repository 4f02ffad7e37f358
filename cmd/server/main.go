package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gdpr-store.backend/internal/config"
	"gdpr-store.backend/internal/infrastructure/kvstore"
	"gdpr-store.backend/internal/infrastructure/repositories"
	"gdpr-store.backend/internal/interfaces/http/handlers"
	"gdpr-store.backend/internal/interfaces/http/middleware"
	"gdpr-store.backend/internal/usecases"
	"gdpr-store.backend/pkg/jwt"
	"gdpr-store.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	dialKV     = kvstore.Dial
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	connectBucket = func(ctx context.Context, b *kvstore.Bucket) error { return b.Connect(ctx) }
	runServer     = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the key-value user store
	kvClient, err := dialKV(cfg.KVStore.ConnectionString, cfg.KVStore.Username, cfg.KVStore.Password)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize key-value store", zap.Error(err))
		return fmt.Errorf("failed to initialize key-value store: %w", err)
	}
	bucket := kvstore.NewBucket(kvClient, cfg.KVStore.Bucket)
	if err := connectBucket(ctx, bucket); err != nil {
		logger.Error(context.Background(), "Failed to connect key-value bucket", zap.Error(err))
		return fmt.Errorf("failed to connect key-value bucket: %w", err)
	}
	defer bucket.Close()
	logger.Info(context.Background(), "Key-value store initialized", zap.String("bucket", bucket.Name()))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userStore := kvstore.NewUserStore(bucket)
	registrationRepo := repositories.NewRegistrationRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	consentRepo := repositories.NewConsentRepository(db)
	dataRequestRepo := repositories.NewDataRequestRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	reportRepo := repositories.NewComplianceReportRepository(db)
	productRepo := repositories.NewProductRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userStore, registrationRepo, jwtService)
	fileUsecase := usecases.NewFileUsecase(fileRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, auditRepo)
	consentUsecase := usecases.NewConsentUsecase(consentRepo, dataRequestRepo, auditRepo)
	complianceUsecase := usecases.NewComplianceUsecase(reportRepo, registrationRepo, consentRepo, dataRequestRepo, orderRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, auditRepo, analyticsRepo)
	planUsecase := usecases.NewPlanUsecase(projectRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	fileHandler := handlers.NewFileHandler(fileUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	consentHandler := handlers.NewConsentHandler(consentUsecase)
	complianceHandler := handlers.NewComplianceHandler(complianceUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	planHandler := handlers.NewPlanHandler(planUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		fileHandler:       fileHandler,
		orderHandler:      orderHandler,
		consentHandler:    consentHandler,
		complianceHandler: complianceHandler,
		productHandler:    productHandler,
		planHandler:       planHandler,
		authMiddleware:    middleware.AuthMiddleware(jwtService),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		cancel()
	}()

	// Start server
	log.Printf("🚀 GDPR Store Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
