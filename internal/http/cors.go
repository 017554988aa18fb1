package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// createCORSMiddleware returns nil when CORS is disabled or no origin is configured.
// A "*" entry allows any origin; credentials are then never allowed.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured, CORS will not be applied")
		return nil
	}

	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, wildcardOrigin) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}

	logger.Info("CORS enabled",
		slog.Any("origins", origins),
		slog.Bool("allow_credentials", config.AllowCredentials))

	return cors.New(config)
}

// parseOrigins splits a comma-separated origin list, dropping blanks and duplicates.
func parseOrigins(originsStr string) []string {
	var origins []string
	for part := range strings.SplitSeq(originsStr, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" && !slices.Contains(origins, trimmed) {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
