// Package usecase defines the digital user use cases and the repository they depend on.
package usecase

import (
	"context"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
)

// DigitalUserRepository defines the persistence operations of the digital user aggregate.
type DigitalUserRepository interface {
	Create(ctx context.Context, in userDomain.DigitalUserCreate) (*userDomain.DigitalUser, error)
	FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error)
	FindByCompositeKey(
		ctx context.Context,
		subject string,
		identityProvider userDomain.IdentityProvider,
		tenantID string,
	) (*userDomain.DigitalUser, error)
	Delete(ctx context.Context, id string) error
}

// DigitalUserUseCase defines the business operations on digital users.
type DigitalUserUseCase interface {
	Create(ctx context.Context, in userDomain.DigitalUserCreate) (*userDomain.DigitalUser, error)
	FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error)
	// FindByCompositeKey looks a user up by the identity provider triple.
	FindByCompositeKey(ctx context.Context, key userDomain.IdentityProviderInformation) (*userDomain.DigitalUser, error)
	Delete(ctx context.Context, id string) error
}
