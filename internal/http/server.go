// Package http provides the API server, its router and the metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	assetHTTP "github.com/tracktainment/duxmanager/internal/asset/http"
	authHTTP "github.com/tracktainment/duxmanager/internal/auth/http"
	authService "github.com/tracktainment/duxmanager/internal/auth/service"
	"github.com/tracktainment/duxmanager/internal/config"
	userHTTP "github.com/tracktainment/duxmanager/internal/digitaluser/http"
	"github.com/tracktainment/duxmanager/internal/metrics"
)

const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *mongo.Client
	server *http.Server
	router *gin.Engine
	logger *slog.Logger

	// ctx bounds background work started by middlewares; Shutdown cancels it.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new HTTP server. db backs the readiness probe and may be nil.
func NewServer(
	db *mongo.Client,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetupRouter registers every route on a fresh gin engine.
//
// Digital user routes are public. Asset routes require a bearer token and are
// rate limited per subject when enabled. metricsProvider may be nil.
func (s *Server) SetupRouter(
	cfg *config.Config,
	digitalUserHandler *userHTTP.DigitalUserHandler,
	assetHandler *assetHTTP.AssetHandler,
	tokenVerifier authService.TokenVerifier,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/api/v1")

	users := v1.Group("/digitalUsers")
	{
		users.POST("", digitalUserHandler.CreateHandler)
		users.GET("", digitalUserHandler.FindByCompositeKeyHandler)
		users.GET("/:id", digitalUserHandler.GetHandler)
		users.DELETE("/:id", digitalUserHandler.DeleteHandler)
	}

	assets := v1.Group("/assets")
	assets.Use(authHTTP.AuthenticationMiddleware(tokenVerifier, s.logger))
	if cfg.RateLimitEnabled {
		assets.Use(authHTTP.RateLimitMiddleware(
			s.ctx,
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}
	{
		assets.POST("/digitalUsers/:digitalUserId", assetHandler.CreateHandler)
		assets.GET("/digitalUsers/:digitalUserId/:externalId", assetHandler.GetHandler)
		assets.GET("", assetHandler.ListHandler)
		assets.DELETE("", assetHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server and stops background middleware work.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler pings the document store primary.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.Ping(ctx, readpref.Primary()); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
