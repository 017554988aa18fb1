package service

import (
	"encoding/base64"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

// FieldCipherService seals single string values into base64 envelopes.
//
// Envelope layout: base64(nonce[12] || ciphertext || tag[16]). The AEAD is
// built once from the derived key and never mutated afterwards, so one
// instance is safe for concurrent use.
type FieldCipherService struct {
	aead AEAD
}

// NewFieldCipher creates a FieldCipherService for the given derived key.
func NewFieldCipher(
	aeadManager AEADManager,
	key []byte,
	alg cryptoDomain.Algorithm,
) (*FieldCipherService, error) {
	aead, err := aeadManager.CreateCipher(key, alg)
	if err != nil {
		return nil, err
	}
	return &FieldCipherService{aead: aead}, nil
}

// NewFieldCipherFromSecret derives the key from params, builds the cipher and
// zeroes the intermediate key bytes.
func NewFieldCipherFromSecret(
	aeadManager AEADManager,
	params cryptoDomain.KeyDerivationParams,
	alg cryptoDomain.Algorithm,
) (*FieldCipherService, error) {
	key, err := DeriveKey(params)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return NewFieldCipher(aeadManager, key, alg)
}

// Encrypt returns the envelope for plaintext, or nil for nil.
func (f *FieldCipherService) Encrypt(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}

	ciphertext, nonce, err := f.aead.Encrypt([]byte(*plaintext), nil)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(nonce)+len(ciphertext))
	sealed = append(sealed, nonce...)
	sealed = append(sealed, ciphertext...)

	envelope := base64.StdEncoding.EncodeToString(sealed)
	return &envelope, nil
}

// Decrypt returns the plaintext of envelope, or nil for nil.
func (f *FieldCipherService) Decrypt(envelope *string) (*string, error) {
	if envelope == nil {
		return nil, nil
	}

	sealed, err := base64.StdEncoding.DecodeString(*envelope)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	if len(sealed) < cryptoDomain.NonceSize+cryptoDomain.TagSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	nonce := sealed[:cryptoDomain.NonceSize]
	ciphertext := sealed[cryptoDomain.NonceSize:]

	plaintext, err := f.aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	value := string(plaintext)
	return &value, nil
}
