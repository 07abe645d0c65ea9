package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobmatch_backend/database"
	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/handlers"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/middleware"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/resume"
	"jobmatch_backend/internal/routes"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine with all services and routes wired.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := handlers.NewAppHandlers(
		validator.New(),
		serviceContainer.SearchService,
		serviceContainer.SignalService,
		serviceContainer.EvaluationService,
	)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

// ServiceContainer bundles the constructed services.
type ServiceContainer struct {
	SearchService     services.SearchService
	SignalService     services.SignalService
	EvaluationService services.EvaluationService
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	candidateRepo := repositories.NewCandidateRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	interviewRepo := repositories.NewInterviewRepository(gormDB)
	engagementRepo := repositories.NewEngagementRepository(gormDB)
	signalRepo := repositories.NewSignalRepository(gormDB)
	evaluationRepo := repositories.NewEvaluationRepository(gormDB)

	oracle := initializeOracle(cfg)
	extractor := resume.NewHTTPExtractor(
		cfg.Extractor.ServiceURL,
		time.Duration(cfg.Extractor.TimeoutSeconds)*time.Second,
	)

	return &ServiceContainer{
		SearchService: services.NewSearchService(candidateRepo, userRepo),
		SignalService: services.NewSignalService(candidateRepo, companyRepo, userRepo,
			jobRepo, applicationRepo, messageRepo, interviewRepo, engagementRepo, signalRepo),
		EvaluationService: services.NewEvaluationService(applicationRepo, candidateRepo,
			jobRepo, userRepo, evaluationRepo, oracle, extractor, cfg.Ranking.MaxResults),
	}
}

func initializeOracle(cfg *config.Config) ai.Oracle {
	generator, err := ai.NewGenerator(
		context.Background(),
		cfg.AI.APIKey,
		cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
		cfg.AI.MaxRetries,
	)
	if err != nil {
		logger.Fatal("Failed to initialize the evaluation oracle", "error", err)
	}
	return ai.NewEvaluator(generator)
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(gormDB),
	)
	return ginRouter
}
