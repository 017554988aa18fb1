package usecase

import (
	"context"
	"strings"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

type digitalUserUseCase struct {
	repo DigitalUserRepository
}

// Create stores a new digital user.
func (d *digitalUserUseCase) Create(
	ctx context.Context,
	in userDomain.DigitalUserCreate,
) (*userDomain.DigitalUser, error) {
	return d.repo.Create(ctx, in)
}

// FindByID returns ErrDigitalUserNotFound when no user has id.
func (d *digitalUserUseCase) FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "id cannot be empty")
	}
	return d.repo.FindByID(ctx, id)
}

// FindByCompositeKey requires all three parts of the key.
func (d *digitalUserUseCase) FindByCompositeKey(
	ctx context.Context,
	key userDomain.IdentityProviderInformation,
) (*userDomain.DigitalUser, error) {
	if strings.TrimSpace(key.Subject) == "" ||
		strings.TrimSpace(key.TenantID) == "" ||
		key.IdentityProvider == "" {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"subject, identityProvider and tenantId are required",
		)
	}
	if _, err := userDomain.ParseIdentityProvider(string(key.IdentityProvider)); err != nil {
		return nil, err
	}
	return d.repo.FindByCompositeKey(ctx, key.Subject, key.IdentityProvider, key.TenantID)
}

// Delete removes a digital user together with its assets.
func (d *digitalUserUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "id cannot be empty")
	}
	return d.repo.Delete(ctx, id)
}

// NewDigitalUserUseCase creates a DigitalUserUseCase backed by repo.
func NewDigitalUserUseCase(repo DigitalUserRepository) DigitalUserUseCase {
	return &digitalUserUseCase{repo: repo}
}
