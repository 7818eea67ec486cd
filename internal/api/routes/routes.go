package routes

import (
	"fmt"

	"tasting-contest-backend/internal/api/handlers"
	"tasting-contest-backend/internal/api/middleware"
	"tasting-contest-backend/internal/auth"
	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/config"
	"tasting-contest-backend/internal/repository"
	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if err := middleware.RegisterMetrics(registry); err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		if err := authz.RegisterMetrics(registry); err != nil {
			return nil, fmt.Errorf("register authz metrics: %w", err)
		}
		router.Use(middleware.Metrics())
		router.GET(cfg.MetricsPath, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Initialize store, gate and validator
	store := repository.NewStore(db)
	gate := authz.NewGate(authz.DefaultPolicy())
	validate := service.NewValidator()

	// Initialize services
	contestService := service.NewContestService(store, gate, validate)
	membershipService := service.NewMembershipService(store, gate, validate)
	copyService := service.NewCopyService(store, gate, validate)
	statementService := service.NewStatementService(store, gate, validate)
	reportService := service.NewReportService(store, gate, validate)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize auth: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	healthHandler := handlers.NewHealthHandler(sqlDB)
	contestHandler := handlers.NewContestHandler(contestService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	copyHandler := handlers.NewCopyHandler(copyService)
	statementHandler := handlers.NewStatementHandler(statementService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		contests := v1.Group("/contests")
		{
			contests.POST("", contestHandler.CreateContest)
			contests.GET("/:id", contestHandler.GetContest)
			contests.PUT("/:id", contestHandler.UpdateContest)
			contests.DELETE("/:id", contestHandler.DeleteContest)
			contests.GET("/:id/roles", contestHandler.GetMyRoles)

			// Divisions
			contests.POST("/:id/divisions", contestHandler.AddDivision)
			contests.DELETE("/:id/divisions/:division_id", contestHandler.RemoveDivision)
			contests.GET("/:id/divisions/:division_id/stats", reportHandler.GetTeamStats)

			// Collections and subjects
			contests.POST("/:id/collections", contestHandler.AddCollection)
			contests.DELETE("/:id/collections/:collection_id", contestHandler.RemoveCollection)
			contests.POST("/:id/collections/:collection_id/divisions/:division_id", contestHandler.AssignCollection)
			contests.DELETE("/:id/collections/:collection_id/divisions/:division_id", contestHandler.UnassignCollection)
			contests.POST("/:id/collections/:collection_id/import", contestHandler.ImportImpressions)
			contests.POST("/:id/collections/:collection_id/subjects/:subject_id/tastings", contestHandler.AddTasting)
			contests.POST("/:id/collections/:collection_id/scopes/:scope_id/subjects/:subject_id/statement", statementHandler.SubmitStatement)

			// Join requests and participants
			contests.POST("/:id/requests", membershipHandler.RequestRole)
			contests.GET("/:id/requests", membershipHandler.ListJoinRequests)
			contests.POST("/:id/requests/:request_id/decline", membershipHandler.DeclineJoinRequest)
			contests.POST("/:id/participants/:user_id/accept", membershipHandler.AcceptJoinRequest)
			contests.PUT("/:id/participants/:user_id/division", membershipHandler.AssignParticipant)
			contests.PUT("/:id/participants/:user_id/role", membershipHandler.SetParticipantRole)
			contests.DELETE("/:id/participants/:user_id", membershipHandler.RemoveParticipant)
			contests.POST("/:id/reset-members", membershipHandler.ResetDivisionMembers)

			// Invitations
			contests.POST("/:id/invite", membershipHandler.InviteByRole)
			contests.POST("/:id/invitation/accept", membershipHandler.AcceptInvitation)
			contests.POST("/:id/invitation/decline", membershipHandler.DeclineInvitation)

			// Copy between contests
			contests.POST("/:id/copy/participants", copyHandler.CopyParticipants)
			contests.POST("/:id/copy/requests", copyHandler.CopyRequests)

			// Reports
			contests.GET("/:id/progress/:scope_id", reportHandler.GetProgress)
			contests.GET("/:id/stats", reportHandler.GetContestStats)
			contests.GET("/:id/statements", statementHandler.StatementSummary)
			contests.GET("/:id/export", reportHandler.ExportResults)
		}
	}

	return router, nil
}
