// Package domain defines the asset model, the owned child of a digital user,
// together with its creation shape and listing criteria.
package domain

import (
	"time"
)

// PermissionPolicy describes what the owning user may do with an asset.
type PermissionPolicy string

const (
	// PermissionOwner marks an asset the user owns.
	PermissionOwner PermissionPolicy = "owner"
	// PermissionViewer marks an asset the user can only view.
	PermissionViewer PermissionPolicy = "viewer"
)

// ParsePermissionPolicy maps a wire value to a PermissionPolicy.
func ParsePermissionPolicy(value string) (PermissionPolicy, error) {
	switch PermissionPolicy(value) {
	case PermissionOwner, PermissionViewer:
		return PermissionPolicy(value), nil
	default:
		return "", ErrUnknownPermissionPolicy
	}
}

// ArtifactInformation identifies the artifact an asset points to.
type ArtifactInformation struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Asset is an element of a digital user's asset list.
//
// ExternalID is unique within the owning user's list only.
type Asset struct {
	ID                  string
	ExternalID          string
	Type                string
	PermissionPolicy    PermissionPolicy
	ArtifactInformation ArtifactInformation
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// AssetCreate carries the caller-supplied fields of a new asset. It never
// carries an identifier or timestamps.
type AssetCreate struct {
	ExternalID          string
	Type                string
	PermissionPolicy    PermissionPolicy
	ArtifactInformation ArtifactInformation
}
