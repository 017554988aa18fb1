package usecase

import (
	"context"
	"strings"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

type assetUseCase struct {
	repo AssetRepository
}

// Create appends an asset to the caller's list.
func (a *assetUseCase) Create(
	ctx context.Context,
	digitalUserID string,
	in assetDomain.AssetCreate,
) (*assetDomain.Asset, error) {
	if err := a.authorize(ctx, digitalUserID); err != nil {
		return nil, err
	}
	return a.repo.Create(ctx, digitalUserID, in)
}

// FindByExternalID returns one asset of the caller's list.
func (a *assetUseCase) FindByExternalID(
	ctx context.Context,
	digitalUserID string,
	externalID string,
) (*assetDomain.Asset, error) {
	if err := a.authorize(ctx, digitalUserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(externalID) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "externalId cannot be empty")
	}
	return a.repo.FindByExternalID(ctx, digitalUserID, externalID)
}

// ListByCriteria validates the criteria before the caller check so a missing
// digitalUserId reports ErrDigitalUserIDRequired rather than a caller mismatch.
func (a *assetUseCase) ListByCriteria(
	ctx context.Context,
	criteria assetDomain.ListCriteria,
) ([]assetDomain.Asset, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if err := authDomain.RequireCaller(ctx, criteria.DigitalUserID); err != nil {
		return nil, err
	}
	return a.repo.ListByCriteria(ctx, criteria)
}

// Delete removes an asset from the caller's list.
func (a *assetUseCase) Delete(ctx context.Context, digitalUserID string, externalID string) error {
	if err := a.authorize(ctx, digitalUserID); err != nil {
		return err
	}
	if strings.TrimSpace(externalID) == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "externalId cannot be empty")
	}
	return a.repo.Delete(ctx, digitalUserID, externalID)
}

func (a *assetUseCase) authorize(ctx context.Context, digitalUserID string) error {
	if strings.TrimSpace(digitalUserID) == "" {
		return assetDomain.ErrDigitalUserIDRequired
	}
	return authDomain.RequireCaller(ctx, digitalUserID)
}

// NewAssetUseCase creates an AssetUseCase backed by repo.
func NewAssetUseCase(repo AssetRepository) AssetUseCase {
	return &assetUseCase{repo: repo}
}
