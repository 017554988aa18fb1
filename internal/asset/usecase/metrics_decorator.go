package usecase

import (
	"context"
	"time"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	"github.com/tracktainment/duxmanager/internal/metrics"
)

// assetUseCaseWithMetrics decorates AssetUseCase with metrics instrumentation.
type assetUseCaseWithMetrics struct {
	next    AssetUseCase
	metrics metrics.BusinessMetrics
}

// NewAssetUseCaseWithMetrics wraps an AssetUseCase with metrics recording.
func NewAssetUseCaseWithMetrics(useCase AssetUseCase, m metrics.BusinessMetrics) AssetUseCase {
	return &assetUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for asset creation.
func (a *assetUseCaseWithMetrics) Create(
	ctx context.Context,
	digitalUserID string,
	in assetDomain.AssetCreate,
) (*assetDomain.Asset, error) {
	start := time.Now()
	asset, err := a.next.Create(ctx, digitalUserID, in)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "assets", "asset_create", status)
	a.metrics.RecordDuration(ctx, "assets", "asset_create", time.Since(start), status)

	return asset, err
}

// FindByExternalID records metrics for single asset lookups.
func (a *assetUseCaseWithMetrics) FindByExternalID(
	ctx context.Context,
	digitalUserID string,
	externalID string,
) (*assetDomain.Asset, error) {
	start := time.Now()
	asset, err := a.next.FindByExternalID(ctx, digitalUserID, externalID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "assets", "asset_get", status)
	a.metrics.RecordDuration(ctx, "assets", "asset_get", time.Since(start), status)

	return asset, err
}

// ListByCriteria records metrics for filtered listings.
func (a *assetUseCaseWithMetrics) ListByCriteria(
	ctx context.Context,
	criteria assetDomain.ListCriteria,
) ([]assetDomain.Asset, error) {
	start := time.Now()
	assets, err := a.next.ListByCriteria(ctx, criteria)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "assets", "asset_list", status)
	a.metrics.RecordDuration(ctx, "assets", "asset_list", time.Since(start), status)

	return assets, err
}

// Delete records metrics for asset removal.
func (a *assetUseCaseWithMetrics) Delete(ctx context.Context, digitalUserID string, externalID string) error {
	start := time.Now()
	err := a.next.Delete(ctx, digitalUserID, externalID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "assets", "asset_delete", status)
	a.metrics.RecordDuration(ctx, "assets", "asset_delete", time.Since(start), status)

	return err
}
