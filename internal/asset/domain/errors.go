package domain

import (
	"github.com/tracktainment/duxmanager/internal/errors"
)

// Asset-specific error definitions.
var (
	// ErrAssetNotFound indicates no asset with the external id exists in the user's list.
	ErrAssetNotFound = errors.Wrap(errors.ErrNotFound, "asset not found")

	// ErrAssetAlreadyExists indicates the user's list already holds an asset with the external id.
	ErrAssetAlreadyExists = errors.Wrap(errors.ErrConflict, "asset already exists")

	// ErrDigitalUserIDRequired indicates a listing request without a digital user id.
	ErrDigitalUserIDRequired = errors.Wrap(errors.ErrInvalidInput, "digitalUserId cannot be empty")

	// ErrInvalidPagination indicates an offset below zero or a limit outside 1..100.
	ErrInvalidPagination = errors.Wrap(errors.ErrInvalidInput, "invalid pagination")

	// ErrUnknownPermissionPolicy indicates a permission policy outside owner|viewer.
	ErrUnknownPermissionPolicy = errors.Wrap(errors.ErrInvalidInput, "unknown permission policy")
)
