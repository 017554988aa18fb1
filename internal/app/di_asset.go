package app

import (
	"fmt"
	"sync"

	assetHTTP "github.com/tracktainment/duxmanager/internal/asset/http"
	assetRepository "github.com/tracktainment/duxmanager/internal/asset/repository"
	assetUseCase "github.com/tracktainment/duxmanager/internal/asset/usecase"
)

type assetComponents struct {
	assetRepository assetUseCase.AssetRepository
	assetUseCase    assetUseCase.AssetUseCase
	assetHandler    *assetHTTP.AssetHandler

	assetRepositoryInit sync.Once
	assetUseCaseInit    sync.Once
	assetHandlerInit    sync.Once
}

// AssetRepository returns the asset repository over the digital users collection.
func (c *Container) AssetRepository() (assetUseCase.AssetRepository, error) {
	var err error
	c.assetRepositoryInit.Do(func() {
		c.assetRepository, err = c.initAssetRepository()
		if err != nil {
			c.setInitError("assetRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("assetRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.assetRepository, nil
}

// AssetUseCase returns the asset use case wrapped with business metrics.
func (c *Container) AssetUseCase() (assetUseCase.AssetUseCase, error) {
	var err error
	c.assetUseCaseInit.Do(func() {
		c.assetUseCase, err = c.initAssetUseCase()
		if err != nil {
			c.setInitError("assetUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("assetUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.assetUseCase, nil
}

// AssetHandler returns the asset HTTP handler.
func (c *Container) AssetHandler() (*assetHTTP.AssetHandler, error) {
	var err error
	c.assetHandlerInit.Do(func() {
		var useCase assetUseCase.AssetUseCase
		useCase, err = c.AssetUseCase()
		if err != nil {
			c.setInitError("assetHandler", err)
			return
		}
		c.assetHandler = assetHTTP.NewAssetHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("assetHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.assetHandler, nil
}

func (c *Container) initAssetRepository() (assetUseCase.AssetRepository, error) {
	coll, err := c.Collection()
	if err != nil {
		return nil, fmt.Errorf("failed to get collection for asset repository: %w", err)
	}

	users, err := c.DigitalUserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get digital user repository for asset repository: %w", err)
	}

	crypt, err := c.FieldCrypt()
	if err != nil {
		return nil, fmt.Errorf("failed to get field crypt for asset repository: %w", err)
	}

	return assetRepository.NewMongoAssetRepository(coll, users, crypt), nil
}

func (c *Container) initAssetUseCase() (assetUseCase.AssetUseCase, error) {
	repo, err := c.AssetRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset repository for use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for asset use case: %w", err)
	}

	return assetUseCase.NewAssetUseCaseWithMetrics(
		assetUseCase.NewAssetUseCase(repo),
		businessMetrics,
	), nil
}
