package dto

import (
	"time"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
)

// ArtifactInformationResponse mirrors domain.ArtifactInformation.
type ArtifactInformationResponse struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
}

// AssetResponse represents an asset in API responses.
type AssetResponse struct {
	ID                  string                      `json:"id"`
	ExternalID          string                      `json:"externalId"`
	Type                string                      `json:"type"`
	PermissionPolicy    string                      `json:"permissionPolicy"`
	ArtifactInformation ArtifactInformationResponse `json:"artifactInformation"`
	CreatedAt           time.Time                   `json:"createdAt"`
	UpdatedAt           *time.Time                  `json:"updatedAt,omitempty"`
}

// MapAssetToResponse converts a domain asset to an API response.
func MapAssetToResponse(asset assetDomain.Asset) AssetResponse {
	return AssetResponse{
		ID:               asset.ID,
		ExternalID:       asset.ExternalID,
		Type:             asset.Type,
		PermissionPolicy: string(asset.PermissionPolicy),
		ArtifactInformation: ArtifactInformationResponse{
			GroupID:    asset.ArtifactInformation.GroupID,
			ArtifactID: asset.ArtifactInformation.ArtifactID,
			Version:    asset.ArtifactInformation.Version,
		},
		CreatedAt: asset.CreatedAt,
		UpdatedAt: asset.UpdatedAt,
	}
}

// MapAssetsToResponse converts a list of assets. The result is never nil so
// an empty listing encodes as [].
func MapAssetsToResponse(assets []assetDomain.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, asset := range assets {
		out = append(out, MapAssetToResponse(asset))
	}
	return out
}
