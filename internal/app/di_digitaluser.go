package app

import (
	"fmt"
	"sync"

	userHTTP "github.com/tracktainment/duxmanager/internal/digitaluser/http"
	userRepository "github.com/tracktainment/duxmanager/internal/digitaluser/repository"
	userUseCase "github.com/tracktainment/duxmanager/internal/digitaluser/usecase"
)

type digitalUserComponents struct {
	digitalUserRepository *userRepository.MongoDigitalUserRepository
	digitalUserUseCase    userUseCase.DigitalUserUseCase
	digitalUserHandler    *userHTTP.DigitalUserHandler

	digitalUserRepositoryInit sync.Once
	digitalUserUseCaseInit    sync.Once
	digitalUserHandlerInit    sync.Once
}

// DigitalUserRepository returns the MongoDB digital user repository.
func (c *Container) DigitalUserRepository() (*userRepository.MongoDigitalUserRepository, error) {
	var err error
	c.digitalUserRepositoryInit.Do(func() {
		c.digitalUserRepository, err = c.initDigitalUserRepository()
		if err != nil {
			c.setInitError("digitalUserRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("digitalUserRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.digitalUserRepository, nil
}

// DigitalUserUseCase returns the digital user use case wrapped with business metrics.
func (c *Container) DigitalUserUseCase() (userUseCase.DigitalUserUseCase, error) {
	var err error
	c.digitalUserUseCaseInit.Do(func() {
		c.digitalUserUseCase, err = c.initDigitalUserUseCase()
		if err != nil {
			c.setInitError("digitalUserUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("digitalUserUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.digitalUserUseCase, nil
}

// DigitalUserHandler returns the digital user HTTP handler.
func (c *Container) DigitalUserHandler() (*userHTTP.DigitalUserHandler, error) {
	var err error
	c.digitalUserHandlerInit.Do(func() {
		var useCase userUseCase.DigitalUserUseCase
		useCase, err = c.DigitalUserUseCase()
		if err != nil {
			c.setInitError("digitalUserHandler", err)
			return
		}
		c.digitalUserHandler = userHTTP.NewDigitalUserHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("digitalUserHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.digitalUserHandler, nil
}

func (c *Container) initDigitalUserRepository() (*userRepository.MongoDigitalUserRepository, error) {
	coll, err := c.Collection()
	if err != nil {
		return nil, fmt.Errorf("failed to get collection for digital user repository: %w", err)
	}

	crypt, err := c.FieldCrypt()
	if err != nil {
		return nil, fmt.Errorf("failed to get field crypt for digital user repository: %w", err)
	}

	return userRepository.NewMongoDigitalUserRepository(coll, crypt), nil
}

func (c *Container) initDigitalUserUseCase() (userUseCase.DigitalUserUseCase, error) {
	repo, err := c.DigitalUserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get digital user repository for use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for digital user use case: %w", err)
	}

	return userUseCase.NewDigitalUserUseCaseWithMetrics(
		userUseCase.NewDigitalUserUseCase(repo),
		businessMetrics,
	), nil
}
