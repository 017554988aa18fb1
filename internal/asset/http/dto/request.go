// Package dto provides data transfer objects for asset HTTP requests and responses.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	customValidation "github.com/tracktainment/duxmanager/internal/validation"
)

const dateLayout = "2006-01-02"

// ArtifactInformationRequest identifies the artifact an asset points to.
type ArtifactInformationRequest struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
}

// Validate checks the mandatory artifact coordinates.
func (r ArtifactInformationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GroupID, validation.Required, customValidation.GroupID),
		validation.Field(&r.ArtifactID, validation.Required, customValidation.ArtifactID),
		validation.Field(&r.Version, validation.Required, customValidation.Version),
	)
}

// CreateAssetRequest is the body of POST /api/v1/assets/digitalUsers/:digitalUserId.
type CreateAssetRequest struct {
	ExternalID          string                      `json:"externalId"`
	Type                string                      `json:"type"`
	PermissionPolicy    string                      `json:"permissionPolicy"`
	ArtifactInformation *ArtifactInformationRequest `json:"artifactInformation"`
}

// Validate checks if the create asset request is valid.
func (r *CreateAssetRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ExternalID, validation.Required, customValidation.ID),
		validation.Field(&r.Type, validation.Required, customValidation.AssetType),
		validation.Field(
			&r.PermissionPolicy,
			validation.Required,
			validation.In(string(assetDomain.PermissionOwner), string(assetDomain.PermissionViewer)),
		),
		validation.Field(&r.ArtifactInformation, validation.Required),
	)
}

// ToDomain converts a validated request to the domain creation shape.
func (r *CreateAssetRequest) ToDomain() (assetDomain.AssetCreate, error) {
	policy, err := assetDomain.ParsePermissionPolicy(r.PermissionPolicy)
	if err != nil {
		return assetDomain.AssetCreate{}, err
	}

	return assetDomain.AssetCreate{
		ExternalID:       r.ExternalID,
		Type:             r.Type,
		PermissionPolicy: policy,
		ArtifactInformation: assetDomain.ArtifactInformation{
			GroupID:    r.ArtifactInformation.GroupID,
			ArtifactID: r.ArtifactInformation.ArtifactID,
			Version:    r.ArtifactInformation.Version,
		},
	}, nil
}

// ListAssetsQuery holds the filters of GET /api/v1/assets. Pagination is parsed separately.
type ListAssetsQuery struct {
	DigitalUserID string `form:"digitalUserId"`
	ExternalIDs   string `form:"externalIds"`
	GroupID       string `form:"groupId"`
	ArtifactID    string `form:"artifactId"`
	Type          string `form:"type"`
	CreatedAt     string `form:"createdAt"`
	From          string `form:"from"`
	To            string `form:"to"`
}

// Validate checks the mandatory digital user id and the format of every filter.
func (q *ListAssetsQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.DigitalUserID, validation.Required, customValidation.ID),
		validation.Field(&q.ExternalIDs, customValidation.IDList),
		validation.Field(&q.GroupID, customValidation.GroupID),
		validation.Field(&q.ArtifactID, customValidation.ArtifactID),
		validation.Field(&q.Type, customValidation.AssetType),
		validation.Field(&q.CreatedAt, customValidation.ISODate),
		validation.Field(&q.From, customValidation.ISODate),
		validation.Field(&q.To, customValidation.ISODate),
	)
}

// ToCriteria builds listing criteria from a validated query.
func (q *ListAssetsQuery) ToCriteria(offset, limit int) assetDomain.ListCriteria {
	return assetDomain.ListCriteria{
		DigitalUserID: q.DigitalUserID,
		Offset:        offset,
		Limit:         limit,
		ExternalIDs:   q.ExternalIDs,
		GroupID:       q.GroupID,
		ArtifactID:    q.ArtifactID,
		Type:          q.Type,
		CreatedAt:     parseDate(q.CreatedAt),
		From:          parseDate(q.From),
		To:            parseDate(q.To),
	}
}

// parseDate returns nil for empty or malformed input; Validate rejects the latter.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

// DeleteAssetQuery holds the parameters of DELETE /api/v1/assets.
type DeleteAssetQuery struct {
	DigitalUserID string `form:"digitalUserId"`
	ExternalID    string `form:"externalId"`
}

// Validate checks that both ids are present UUIDs.
func (q *DeleteAssetQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.DigitalUserID, validation.Required, customValidation.ID),
		validation.Field(&q.ExternalID, validation.Required, customValidation.ID),
	)
}
