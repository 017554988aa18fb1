// Package usecase defines the asset use cases. Every operation requires the
// authenticated caller to be the owning digital user.
package usecase

import (
	"context"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
)

// AssetRepository defines the persistence operations on a user's embedded assets.
type AssetRepository interface {
	Create(ctx context.Context, digitalUserID string, in assetDomain.AssetCreate) (*assetDomain.Asset, error)
	FindByExternalID(ctx context.Context, digitalUserID string, externalID string) (*assetDomain.Asset, error)
	ListByCriteria(ctx context.Context, criteria assetDomain.ListCriteria) ([]assetDomain.Asset, error)
	Delete(ctx context.Context, digitalUserID string, externalID string) error
}

// AssetUseCase defines the business operations on assets.
type AssetUseCase interface {
	Create(ctx context.Context, digitalUserID string, in assetDomain.AssetCreate) (*assetDomain.Asset, error)
	FindByExternalID(ctx context.Context, digitalUserID string, externalID string) (*assetDomain.Asset, error)
	ListByCriteria(ctx context.Context, criteria assetDomain.ListCriteria) ([]assetDomain.Asset, error)
	Delete(ctx context.Context, digitalUserID string, externalID string) error
}
