package domain

import (
	"github.com/tracktainment/duxmanager/internal/errors"
)

// Digital user error definitions.
var (
	// ErrDigitalUserNotFound indicates no digital user matches the id or composite key.
	ErrDigitalUserNotFound = errors.Wrap(errors.ErrNotFound, "digital user not found")

	// ErrDigitalUserAlreadyExists indicates the (subject, provider, tenant) triple is taken.
	ErrDigitalUserAlreadyExists = errors.Wrap(errors.ErrConflict, "digital user already exists")

	// ErrUnknownIdentityProvider indicates an identity provider outside the supported set.
	ErrUnknownIdentityProvider = errors.Wrap(errors.ErrInvalidInput, "unknown identity provider")

	// ErrUnknownContactMediumType indicates a contact type outside phone|email|geographicAddress.
	ErrUnknownContactMediumType = errors.Wrap(errors.ErrInvalidInput, "unknown contact medium type")
)
