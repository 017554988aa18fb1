// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	appValidation "github.com/tracktainment/duxmanager/internal/validation"
)

// MinKDFIterations is the lowest PBKDF2 iteration count accepted for the field cipher.
const MinKDFIterations = 10000

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds the graceful shutdown of the HTTP servers.
	ShutdownTimeout time.Duration

	// MongoURI is the connection string of the document store.
	MongoURI string
	// MongoDatabase is the database holding the digital users collection.
	MongoDatabase string
	// MongoCollection is the collection holding digital user documents.
	MongoCollection string
	// MongoConnectTimeout is the maximum time spent establishing the first connection.
	MongoConnectTimeout time.Duration
	// MongoMaxPoolSize is the maximum number of pooled connections.
	MongoMaxPoolSize uint64

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionSecretKey is the secret the field encryption key is derived from.
	EncryptionSecretKey string
	// EncryptionSalt is the PBKDF2 salt.
	EncryptionSalt string
	// EncryptionKDFIterations is the PBKDF2 iteration count.
	EncryptionKDFIterations int
	// EncryptionAlgorithm selects the AEAD ("aes-gcm" or "chacha20-poly1305").
	EncryptionAlgorithm string
	// EncryptionStrictMode rejects sensitive declarations on unsupported field types.
	EncryptionStrictMode bool
	// EncryptionSecretKMSKeyURI, when set, unwraps EncryptionSecretKey through a KMS keeper.
	EncryptionSecretKMSKeyURI string

	// AuthJWTSecret is the HMAC key used to verify bearer tokens.
	AuthJWTSecret string
	// AuthJWTIssuer is the expected token issuer; empty disables the check.
	AuthJWTIssuer string

	// RateLimitEnabled indicates whether rate limiting for authenticated endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second for authenticated endpoints.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for authenticated endpoints rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Document store
		MongoURI:            env.GetString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:       env.GetString("MONGODB_DATABASE", "dux-manager"),
		MongoCollection:     env.GetString("MONGODB_COLLECTION", "digital-users"),
		MongoConnectTimeout: env.GetDuration("MONGODB_CONNECT_TIMEOUT_SECONDS", 10, time.Second),
		MongoMaxPoolSize:    uint64(env.GetInt("MONGODB_MAX_POOL_SIZE", 100)),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Field encryption
		EncryptionSecretKey:       env.GetString("ENCRYPTION_SECRET_KEY", ""),
		EncryptionSalt:            env.GetString("ENCRYPTION_SALT", ""),
		EncryptionKDFIterations:   env.GetInt("ENCRYPTION_KDF_ITERATIONS", 65536),
		EncryptionAlgorithm:       env.GetString("ENCRYPTION_ALGORITHM", "aes-gcm"),
		EncryptionStrictMode:      env.GetBool("ENCRYPTION_STRICT_MODE", true),
		EncryptionSecretKMSKeyURI: env.GetString("ENCRYPTION_SECRET_KMS_KEY_URI", ""),

		// Auth
		AuthJWTSecret: env.GetString("AUTH_JWT_SECRET", ""),
		AuthJWTIssuer: env.GetString("AUTH_JWT_ISSUER", ""),

		// Rate Limiting (authenticated endpoints)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "duxmanager"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MongoURI, validation.Required),
		validation.Field(&c.MongoDatabase, validation.Required),
		validation.Field(&c.MongoCollection, validation.Required),
		validation.Field(
			&c.EncryptionSecretKey,
			validation.Required,
			validation.When(c.EncryptionSecretKMSKeyURI != "", appValidation.Base64),
		),
		validation.Field(&c.EncryptionSalt, validation.Required),
		validation.Field(&c.EncryptionKDFIterations, validation.Min(MinKDFIterations)),
		validation.Field(
			&c.EncryptionAlgorithm,
			validation.Required,
			validation.In("aes-gcm", "chacha20-poly1305"),
		),
		validation.Field(&c.AuthJWTSecret, validation.Required),
		validation.Field(&c.MongoMaxPoolSize, validation.Min(uint64(1))),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
