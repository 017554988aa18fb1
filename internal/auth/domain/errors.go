package domain

import (
	"github.com/tracktainment/duxmanager/internal/errors"
)

// Authentication errors.
var (
	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing bearer token")

	// ErrInvalidToken indicates the bearer token failed signature or claim validation.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid bearer token")

	// ErrCallerMismatch indicates the authenticated subject differs from the requested digital user.
	ErrCallerMismatch = errors.Wrap(errors.ErrUnauthorized, "caller does not match digital user")
)
