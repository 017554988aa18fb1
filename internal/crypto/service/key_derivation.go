package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

// DeriveKey derives the 256-bit field encryption key with PBKDF2-HMAC-SHA256.
//
// The result is deterministic for the same parameters, so every process
// configured with the same secret and salt can open the others' envelopes.
func DeriveKey(params cryptoDomain.KeyDerivationParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return pbkdf2.Key(params.Secret, params.Salt, params.Iterations, cryptoDomain.KeySize, sha256.New), nil
}
