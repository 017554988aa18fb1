package app

import (
	"context"
	"fmt"
	"sync"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
	"github.com/tracktainment/duxmanager/internal/crypto/fieldcrypt"
	cryptoService "github.com/tracktainment/duxmanager/internal/crypto/service"
)

type cryptoComponents struct {
	aeadManager cryptoService.AEADManager
	kmsService  cryptoService.KMSService
	fieldCipher cryptoService.FieldCipher
	fieldCrypt  *fieldcrypt.Middleware

	aeadManagerInit sync.Once
	kmsServiceInit  sync.Once
	fieldCipherInit sync.Once
	fieldCryptInit  sync.Once
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// FieldCipher returns the cipher applied to sensitive fields.
// The key is derived once; a KMS-wrapped secret is unwrapped first.
func (c *Container) FieldCipher() (cryptoService.FieldCipher, error) {
	var err error
	c.fieldCipherInit.Do(func() {
		c.fieldCipher, err = c.initFieldCipher()
		if err != nil {
			c.setInitError("fieldCipher", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("fieldCipher"); storedErr != nil {
		return nil, storedErr
	}
	return c.fieldCipher, nil
}

// FieldCrypt returns the middleware that encrypts and decrypts persisted documents.
func (c *Container) FieldCrypt() (*fieldcrypt.Middleware, error) {
	var err error
	c.fieldCryptInit.Do(func() {
		var cipher cryptoService.FieldCipher
		cipher, err = c.FieldCipher()
		if err != nil {
			c.setInitError("fieldCrypt", err)
			return
		}
		c.fieldCrypt = fieldcrypt.NewMiddleware(cipher, c.config.EncryptionStrictMode, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("fieldCrypt"); storedErr != nil {
		return nil, storedErr
	}
	return c.fieldCrypt, nil
}

func (c *Container) initFieldCipher() (cryptoService.FieldCipher, error) {
	secret, err := c.encryptionSecret(context.Background())
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(secret)

	cipher, err := cryptoService.NewFieldCipherFromSecret(
		c.AEADManager(),
		cryptoDomain.KeyDerivationParams{
			Secret:     secret,
			Salt:       []byte(c.config.EncryptionSalt),
			Iterations: c.config.EncryptionKDFIterations,
		},
		cryptoDomain.Algorithm(c.config.EncryptionAlgorithm),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}
	return cipher, nil
}

// encryptionSecret returns a copy of the configured secret, unwrapped through
// the KMS keeper when a key URI is configured.
func (c *Container) encryptionSecret(ctx context.Context) ([]byte, error) {
	if c.config.EncryptionSecretKMSKeyURI == "" {
		return []byte(c.config.EncryptionSecretKey), nil
	}

	secret, err := c.KMSService().UnwrapSecret(
		ctx,
		c.config.EncryptionSecretKMSKeyURI,
		c.config.EncryptionSecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap encryption secret: %w", err)
	}
	return secret, nil
}
