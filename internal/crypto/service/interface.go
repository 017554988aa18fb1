// Package service provides the cryptographic primitives behind field-level
// encryption: AEAD ciphers, key derivation, KMS secret unwrapping and the
// string cipher applied to sensitive fields.
package service

import (
	"context"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt seals plaintext under a freshly generated nonce. The returned
	// ciphertext carries the authentication tag as its suffix.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext, verifying the authentication tag.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager creates AEAD cipher instances for a key and algorithm.
type AEADManager interface {
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// FieldCipher transforms a single optional string value.
//
// A nil input yields a nil output without error. Decrypt fails closed: any
// envelope that cannot be authenticated returns ErrDecryptionFailed.
type FieldCipher interface {
	Encrypt(plaintext *string) (*string, error)
	Decrypt(envelope *string) (*string, error)
}

// KMSService opens KMS keepers and unwraps secrets through them.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
	UnwrapSecret(ctx context.Context, keyURI, wrapped string) ([]byte, error)
}
