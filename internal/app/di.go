// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tracktainment/duxmanager/internal/config"
	"github.com/tracktainment/duxmanager/internal/database"
	"github.com/tracktainment/duxmanager/internal/http"
	"github.com/tracktainment/duxmanager/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access and shared afterwards.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	mongoClient     *mongo.Client
	collection      *mongo.Collection
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	poolMonitor     *event.PoolMonitor

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Module components, see di_*.go
	cryptoComponents
	authComponents
	digitalUserComponents
	assetComponents

	mu                  sync.Mutex
	loggerInit          sync.Once
	mongoClientInit     sync.Once
	collectionInit      sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	poolMonitorInit     sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MongoClient returns the connected document store client.
func (c *Container) MongoClient() (*mongo.Client, error) {
	var err error
	c.mongoClientInit.Do(func() {
		c.mongoClient, err = c.initMongoClient()
		if err != nil {
			c.setInitError("mongoClient", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("mongoClient"); storedErr != nil {
		return nil, storedErr
	}
	return c.mongoClient, nil
}

// Collection returns the digital users collection.
func (c *Container) Collection() (*mongo.Collection, error) {
	var err error
	c.collectionInit.Do(func() {
		c.collection, err = c.initCollection()
		if err != nil {
			c.setInitError("collection", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("collection"); storedErr != nil {
		return nil, storedErr
	}
	return c.collection, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the use case metrics, a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// PoolMonitor returns the connection pool monitor, or nil when metrics are disabled.
func (c *Container) PoolMonitor() (*event.PoolMonitor, error) {
	var err error
	c.poolMonitorInit.Do(func() {
		c.poolMonitor, err = c.initPoolMonitor()
		if err != nil {
			c.setInitError("poolMonitor", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("poolMonitor"); storedErr != nil {
		return nil, storedErr
	}
	return c.poolMonitor, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("httpServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.setInitError("metricsServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database disconnect: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) databaseConfig() database.Config {
	return database.Config{
		URI:            c.config.MongoURI,
		Database:       c.config.MongoDatabase,
		Collection:     c.config.MongoCollection,
		ConnectTimeout: c.config.MongoConnectTimeout,
		MaxPoolSize:    c.config.MongoMaxPoolSize,
	}
}

func (c *Container) initMongoClient() (*mongo.Client, error) {
	poolMonitor, err := c.PoolMonitor()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool monitor for database: %w", err)
	}

	cfg := c.databaseConfig()
	cfg.PoolMonitor = poolMonitor

	client, err := database.Connect(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return client, nil
}

func (c *Container) initCollection() (*mongo.Collection, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, err
	}
	return database.Collection(client, c.databaseConfig()), nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

func (c *Container) initPoolMonitor() (*event.PoolMonitor, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return metrics.NewPoolMonitor(provider.MeterProvider(), c.config.MetricsNamespace)
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	digitalUserHandler, err := c.DigitalUserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get digital user handler for http server: %w", err)
	}

	assetHandler, err := c.AssetHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(client, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(
		c.config,
		digitalUserHandler,
		assetHandler,
		c.TokenVerifier(),
		provider,
		c.config.MetricsNamespace,
	)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
