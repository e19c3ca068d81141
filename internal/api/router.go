package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/certflow/certification-system/docs"
	"github.com/certflow/certification-system/internal/api/handler"
	"github.com/certflow/certification-system/internal/api/middleware"
	"github.com/certflow/certification-system/internal/core/service"
	"github.com/certflow/certification-system/internal/infrastructure/config"
	"github.com/certflow/certification-system/internal/infrastructure/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, directory *memory.UserDirectory, store *memory.CertificationStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// HTTP metrics get a per-router registry so building a second router (as
	// tests do) never double-registers collectors; /metrics serves both the
	// router registry and the default one holding the domain counters.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "certification",
		Registerer: registry,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(directory, cfg.JWTSecret, cfg.TokenTTL, log)
	certService := service.NewCertificationService(store, log)
	authHandler := handler.NewAuthHandler(authService)
	certHandler := handler.NewCertificationHandler(certService)
	healthHandler := handler.NewHealthHandler(directory, store)
	guard := middleware.Guard(authService, directory)

	// --- Operational endpoints (no artificial latency) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes, behind the simulated network jitter ---
	apiGroup := e.Group("")
	if cfg.Latency.Enabled {
		apiGroup.Use(middleware.Latency(cfg.Latency.Min, cfg.Latency.Max))
	}

	apiGroup.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(cfg.Login.Rate, cfg.Login.Burst))
	apiGroup.GET("/auth/validate", authHandler.Validate, guard)
	apiGroup.GET("/me", authHandler.Me, guard)
	apiGroup.POST("/logout", authHandler.Logout)

	certGroup := apiGroup.Group("/certifications", guard)
	certGroup.GET("", certHandler.List)
	certGroup.POST("", certHandler.Create)
	certGroup.PATCH("/:id/status", certHandler.UpdateStatus)

	return e
}
