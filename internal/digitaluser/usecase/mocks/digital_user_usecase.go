package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
)

// MockDigitalUserUseCase is a mock implementation of DigitalUserUseCase.
type MockDigitalUserUseCase struct {
	mock.Mock
}

// NewMockDigitalUserUseCase creates a mock that asserts its expectations on test cleanup.
func NewMockDigitalUserUseCase(t *testing.T) *MockDigitalUserUseCase {
	m := &MockDigitalUserUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockDigitalUserUseCase) Create(
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
func (m *MockDigitalUserUseCase) FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.DigitalUser), args.Error(1)
}

// FindByCompositeKey mocks the FindByCompositeKey method.
func (m *MockDigitalUserUseCase) FindByCompositeKey(
	ctx context.Context,
	key userDomain.IdentityProviderInformation,
) (*userDomain.DigitalUser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.DigitalUser), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockDigitalUserUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
