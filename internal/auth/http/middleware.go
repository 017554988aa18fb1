// Package http provides HTTP middleware for bearer token authentication and rate limiting.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
	authService "github.com/tracktainment/duxmanager/internal/auth/service"
	"github.com/tracktainment/duxmanager/internal/httputil"
)

// AuthenticationMiddleware verifies the Bearer token in the Authorization header
// and stores the resulting caller in the request context.
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer").
// Missing, malformed or invalid tokens respond 401.
func AuthenticationMiddleware(verifier authService.TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidToken, logger)
			c.Abort()
			return
		}

		rawToken := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if rawToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		caller, err := verifier.Verify(rawToken)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := authDomain.WithCaller(c.Request.Context(), caller)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.String("subject", caller.Subject))

		c.Next()
	}
}
