package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
	"github.com/tracktainment/duxmanager/internal/digitaluser/usecase/mocks"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

func sampleKey() userDomain.IdentityProviderInformation {
	return userDomain.IdentityProviderInformation{
		Subject:          "sub-123",
		IdentityProvider: userDomain.KeyCloak,
		TenantID:         "tenant-1",
	}
}

func sampleUser() *userDomain.DigitalUser {
	return &userDomain.DigitalUser{
		ID:                          "0190f2a4-7b5e-7c1d-9a3e-5f6b7c8d9e0f",
		IdentityProviderInformation: sampleKey(),
		CreatedAt:                   time.Now().UTC(),
	}
}

func TestDigitalUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DelegatesToRepository", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		in := userDomain.DigitalUserCreate{IdentityProviderInformation: sampleKey()}
		expected := sampleUser()
		repo.On("Create", ctx, in).Return(expected, nil).Once()

		user, err := NewDigitalUserUseCase(repo).Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		in := userDomain.DigitalUserCreate{IdentityProviderInformation: sampleKey()}
		repo.On("Create", ctx, in).Return(nil, userDomain.ErrDigitalUserAlreadyExists).Once()

		user, err := NewDigitalUserUseCase(repo).Create(ctx, in)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestDigitalUserUseCase_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Found", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		expected := sampleUser()
		repo.On("FindByID", ctx, expected.ID).Return(expected, nil).Once()

		user, err := NewDigitalUserUseCase(repo).FindByID(ctx, expected.ID)

		require.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		repo.On("FindByID", ctx, "missing").Return(nil, userDomain.ErrDigitalUserNotFound).Once()

		_, err := NewDigitalUserUseCase(repo).FindByID(ctx, "missing")

		assert.ErrorIs(t, err, userDomain.ErrDigitalUserNotFound)
	})

	t.Run("Error_BlankID", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)

		_, err := NewDigitalUserUseCase(repo).FindByID(ctx, "  ")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestDigitalUserUseCase_FindByCompositeKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Found", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		key := sampleKey()
		expected := sampleUser()
		repo.On("FindByCompositeKey", ctx, key.Subject, key.IdentityProvider, key.TenantID).
			Return(expected, nil).
			Once()

		user, err := NewDigitalUserUseCase(repo).FindByCompositeKey(ctx, key)

		require.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Error_MissingPart", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		key := sampleKey()
		key.TenantID = ""

		_, err := NewDigitalUserUseCase(repo).FindByCompositeKey(ctx, key)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_UnknownProvider", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		key := sampleKey()
		key.IdentityProvider = "okta"

		_, err := NewDigitalUserUseCase(repo).FindByCompositeKey(ctx, key)

		assert.ErrorIs(t, err, userDomain.ErrUnknownIdentityProvider)
	})
}

func TestDigitalUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Deleted", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		repo.On("Delete", ctx, "user-1").Return(nil).Once()

		assert.NoError(t, NewDigitalUserUseCase(repo).Delete(ctx, "user-1"))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		repo.On("Delete", ctx, "user-1").Return(userDomain.ErrDigitalUserNotFound).Once()

		err := NewDigitalUserUseCase(repo).Delete(ctx, "user-1")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		repo := mocks.NewMockDigitalUserRepository(t)
		storeErr := errors.New("connection reset")
		repo.On("Delete", ctx, "user-1").Return(storeErr).Once()

		err := NewDigitalUserUseCase(repo).Delete(ctx, "user-1")

		assert.Equal(t, storeErr, err)
	})
}
