package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
)

// MockAssetUseCase is a mock implementation of AssetUseCase.
type MockAssetUseCase struct {
	mock.Mock
}

// NewMockAssetUseCase creates a mock that asserts its expectations on test cleanup.
func NewMockAssetUseCase(t *testing.T) *MockAssetUseCase {
	m := &MockAssetUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockAssetUseCase) Create(
	ctx context.Context,
	digitalUserID string,
	in assetDomain.AssetCreate,
) (*assetDomain.Asset, error) {
	args := m.Called(ctx, digitalUserID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetDomain.Asset), args.Error(1)
}

// FindByExternalID mocks the FindByExternalID method.
func (m *MockAssetUseCase) FindByExternalID(
	ctx context.Context,
	digitalUserID string,
	externalID string,
) (*assetDomain.Asset, error) {
	args := m.Called(ctx, digitalUserID, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetDomain.Asset), args.Error(1)
}

// ListByCriteria mocks the ListByCriteria method.
func (m *MockAssetUseCase) ListByCriteria(
	ctx context.Context,
	criteria assetDomain.ListCriteria,
) ([]assetDomain.Asset, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assetDomain.Asset), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockAssetUseCase) Delete(ctx context.Context, digitalUserID string, externalID string) error {
	args := m.Called(ctx, digitalUserID, externalID)
	return args.Error(0)
}
