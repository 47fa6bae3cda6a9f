package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/taskvault/task-api/internal/api/handler"
	"github.com/taskvault/task-api/internal/api/middleware"
	"github.com/taskvault/task-api/internal/core/service"
	"github.com/taskvault/task-api/internal/infrastructure/db/postgres"
	"github.com/taskvault/task-api/internal/infrastructure/http/handlers"
	"github.com/taskvault/task-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	tokenService, err := service.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.ExpirationHours)*time.Hour,
	)
	if err != nil {
		return nil, err
	}
	authService := service.NewAuthService(userRepo, tokenService, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService, log)
	taskHandler := handler.NewTaskHandler(taskService)
	authMiddleware := middleware.Auth(tokenService, userRepo)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authMiddleware)
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Task routes (all protected) ---
	tasks := e.Group("/api/tasks", authMiddleware)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.POST("/:id/toggle", taskHandler.Toggle)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(pool)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e, nil
}
