// Package http provides the HTTP server, router, and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/tokengen/internal/config"
	"github.com/allisson/tokengen/internal/metrics"
	tokenHTTP "github.com/allisson/tokengen/internal/token/http"
	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
)

// Server represents the HTTP API server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	tokenUseCase tokenUseCase.TokenUseCase
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server with all routes and middleware configured.
// The meterProvider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	useCase tokenUseCase.TokenUseCase,
	meterProvider metric.MeterProvider,
) *Server {
	s := &Server{
		logger:       logger,
		tokenUseCase: useCase,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	s.router = s.setupRouter(cfg, meterProvider)
	s.server.Handler = s.router

	return s
}

// setupRouter builds the Gin engine with middleware and routes.
func (s *Server) setupRouter(cfg *config.Config, meterProvider metric.MeterProvider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	// Health and readiness
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Browser-facing pages and assets
	router.GET("/", s.indexHandler)
	router.GET("/favicon.ico", s.faviconHandler)
	router.GET("/static/rocket.png", s.rocketHandler)

	// Token API, rate limited per client IP when enabled
	tokenHandler := tokenHTTP.NewTokenHandler(s.tokenUseCase, s.logger)
	api := router.Group("/")
	if cfg.RateLimitEnabled {
		api.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	api.GET("/generate", tokenHandler.GenerateHandler)
	api.POST("/tokens", tokenHandler.TokensHandler)

	return router
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve token requests.
// It probes the entropy source by generating a token.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"server": "shutting_down"},
		})
		return
	}

	if _, err := s.tokenUseCase.GenerateToken(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"entropy": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
