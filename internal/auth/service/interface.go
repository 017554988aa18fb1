// Package service provides bearer token verification for the HTTP layer.
package service

import (
	"time"

	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
)

// TokenVerifier validates a raw bearer token and returns the caller it was issued for.
type TokenVerifier interface {
	Verify(rawToken string) (*authDomain.Caller, error)
}

// TokenIssuer signs tokens for a subject. Used by the CLI to mint development tokens.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
}
