package domain

import "context"

// KeyDerivationParams holds the inputs of the PBKDF2 derivation of the field key.
type KeyDerivationParams struct {
	Secret     []byte
	Salt       []byte
	Iterations int
}

// Validate rejects parameters that would produce a weak or empty key.
func (p KeyDerivationParams) Validate() error {
	if len(p.Secret) == 0 || len(p.Salt) == 0 {
		return ErrWeakKeyDerivation
	}
	if p.Iterations < MinIterations {
		return ErrWeakKeyDerivation
	}
	return nil
}

// KMSKeeper decrypts a wrapped secret. *secrets.Keeper from gocloud.dev satisfies it.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// Zero overwrites key material in place. Callers defer it right after the
// secret or derived key is produced.
func Zero(b []byte) {
	clear(b)
}
