package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/agenciahub/backend/docs"
	"github.com/agenciahub/backend/internal/api/handler"
	"github.com/agenciahub/backend/internal/api/middleware"
	"github.com/agenciahub/backend/internal/core/service"
	"github.com/agenciahub/backend/internal/infrastructure/config"
	mongodb "github.com/agenciahub/backend/internal/infrastructure/db/mongo"
	redisdb "github.com/agenciahub/backend/internal/infrastructure/db/redis"
	"github.com/agenciahub/backend/internal/pdf"
	"github.com/agenciahub/backend/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agencyhub"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	financialRepo := mongodb.NewFinancialRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	boardRepo := mongodb.NewBoardRepository(db)
	reportRepo := mongodb.NewReportRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	clientService := service.NewClientService(clientRepo, log)
	projectService := service.NewProjectService(projectRepo, clientRepo, log)
	financialService := service.NewFinancialService(financialRepo, log)
	boardService := service.NewBoardService(boardRepo, log)
	dashboardService := service.NewDashboardService(
		projectRepo, clientRepo, financialRepo,
		newInstrumentedCache(redisdb.NewCache(rdb)), cfg.DashboardCacheTTL, log,
	)
	reportService := service.NewReportService(
		serviceRepo, reportRepo, clientRepo, projectRepo, financialRepo,
		pdf.NewGenerator(), log,
	)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)
	financialHandler := handler.NewFinancialHandler(financialService)
	boardHandler := handler.NewBoardHandler(boardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	reportHandler := handler.NewReportHandler(reportService)

	authRequired := middleware.Auth(authService)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Clients ---
	clients := e.Group("/api/clients", authRequired)
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Projects ---
	projects := e.Group("/api/projects", authRequired)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- Financial entries ---
	financial := e.Group("/api/financial", authRequired)
	financial.POST("", financialHandler.Create)
	financial.GET("", financialHandler.List)
	financial.GET("/:id", financialHandler.Get)
	financial.PUT("/:id", financialHandler.Update)
	financial.DELETE("/:id", financialHandler.Delete)

	// --- Boards ---
	boards := e.Group("/api/boards", authRequired)
	boards.POST("", boardHandler.Create)
	boards.GET("", boardHandler.List)
	boards.GET("/:id", boardHandler.Get)
	boards.PUT("/:id", boardHandler.Update)
	boards.DELETE("/:id", boardHandler.Delete)

	// --- Dashboard ---
	dashboard := e.Group("/api/dashboard", authRequired)
	dashboard.GET("/metrics", dashboardHandler.Metrics)
	dashboard.GET("/recent-projects", dashboardHandler.RecentProjects)
	dashboard.GET("/financial-summary", dashboardHandler.FinancialSummary)
	dashboard.GET("/revenue-by-client", dashboardHandler.RevenueByClient)
	dashboard.GET("/project-timeline", dashboardHandler.ProjectTimeline)
	dashboard.GET("/financial-categories", dashboardHandler.FinancialCategories)

	registerReportRoutes(e.Group("/api/reports", authRequired), reportHandler)

	return e
}

// registerReportRoutes wires the report surface: catalog, records, and PDF
// documents. Static segments are registered before /:id so the router never
// treats "services", "generate", "client", "financial", or "project" as a
// report ID.
func registerReportRoutes(reports *echo.Group, h *handler.ReportHandler) {
	reports.POST("/services", h.CreateService)
	reports.GET("/services", h.ListServices)
	reports.GET("/services/:id", h.GetService)
	reports.PUT("/services/:id", h.UpdateService)
	reports.DELETE("/services/:id", h.DeleteService)

	reports.POST("/generate", h.GenerateReport)
	reports.GET("", h.ListReports)
	reports.GET("/:id", h.GetReport)

	reports.GET("/client/:id", h.ClientReportPDF)
	reports.GET("/financial", h.FinancialReportPDF)
	reports.GET("/project/:id", h.ProjectReportPDF)
	reports.POST("/invoice", h.InvoicePDF)
}
