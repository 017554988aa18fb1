package app

import (
	"sync"

	authService "github.com/tracktainment/duxmanager/internal/auth/service"
)

type authComponents struct {
	jwtService     *authService.JWTService
	jwtServiceInit sync.Once
}

// JWTService returns the HS256 token service built from the auth settings.
func (c *Container) JWTService() *authService.JWTService {
	c.jwtServiceInit.Do(func() {
		c.jwtService = authService.NewJWTService(c.config.AuthJWTSecret, c.config.AuthJWTIssuer)
	})
	return c.jwtService
}

// TokenVerifier returns the verifier guarding the asset routes.
func (c *Container) TokenVerifier() authService.TokenVerifier {
	return c.JWTService()
}

// TokenIssuer returns the issuer used by the issue-token command.
func (c *Container) TokenIssuer() authService.TokenIssuer {
	return c.JWTService()
}
