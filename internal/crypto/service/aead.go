package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

// AEADCipher seals values with AES-256-GCM or ChaCha20-Poly1305 (RFC 8439).
//
// Nonces are 12 random bytes drawn per call and tags are 16 bytes. A single
// key must not seal more than about 2^32 values because of the random nonce
// collision bound.
type AEADCipher struct {
	alg  cryptoDomain.Algorithm
	aead cipher.AEAD
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}

func newChaCha20Poly1305(key []byte) (cipher.AEAD, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}
	return aead, nil
}

// Algorithm reports which construction backs the cipher.
func (c *AEADCipher) Algorithm() cryptoDomain.Algorithm {
	return c.alg
}

// Encrypt seals plaintext with a fresh random nonce.
func (c *AEADCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(nil, nonce, plaintext, aad), nonce, nil
}

// Decrypt opens ciphertext. A nonce of the wrong length is reported as
// ErrDecryptionFailed; authentication failures are wrapped.
func (c *AEADCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != c.aead.NonceSize() {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
