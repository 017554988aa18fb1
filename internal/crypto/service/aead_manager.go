package service

import (
	"crypto/cipher"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

var aeadConstructors = map[cryptoDomain.Algorithm]func(key []byte) (cipher.AEAD, error){
	cryptoDomain.AESGCM:   newAESGCM,
	cryptoDomain.ChaCha20: newChaCha20Poly1305,
}

// AEADManagerService selects the AEAD implementation for an algorithm.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher returns an AEAD for alg keyed with key.
//
// Returns ErrInvalidKeySize for keys that are not 32 bytes and
// ErrUnsupportedAlgorithm for unknown algorithms.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	newAEAD, ok := aeadConstructors[alg]
	if !ok {
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return &AEADCipher{alg: alg, aead: aead}, nil
}
