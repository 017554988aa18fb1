// Package mocks provides mock implementations of the digital user use case dependencies.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
)

// MockDigitalUserRepository is a mock implementation of DigitalUserRepository.
type MockDigitalUserRepository struct {
	mock.Mock
}

// NewMockDigitalUserRepository creates a mock that asserts its expectations on test cleanup.
func NewMockDigitalUserRepository(t *testing.T) *MockDigitalUserRepository {
	m := &MockDigitalUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockDigitalUserRepository) Create(
	ctx context.Context,
	in userDomain.DigitalUserCreate,
) (*userDomain.DigitalUser, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.DigitalUser), args.Error(1)
}

// FindByID mocks the FindByID method.
func (m *MockDigitalUserRepository) FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.DigitalUser), args.Error(1)
}

// FindByCompositeKey mocks the FindByCompositeKey method.
func (m *MockDigitalUserRepository) FindByCompositeKey(
	ctx context.Context,
	subject string,
	identityProvider userDomain.IdentityProvider,
	tenantID string,
) (*userDomain.DigitalUser, error) {
	args := m.Called(ctx, subject, identityProvider, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.DigitalUser), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockDigitalUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
