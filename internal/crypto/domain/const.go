// Package domain holds the key material types, algorithm identifiers and
// errors of the field encryption subsystem.
package domain

// Algorithm represents the AEAD algorithm used to seal sensitive fields.
//
// Both supported algorithms take a 256-bit key, a 96-bit nonce and produce a
// 128-bit authentication tag, so envelopes have the same layout regardless of
// the algorithm in use.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM. Preferred on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305. Preferred where AES hardware
	// acceleration is unavailable.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the derived key length in bytes (256 bits).
	KeySize = 32
	// NonceSize is the per-envelope nonce length in bytes (96 bits).
	NonceSize = 12
	// TagSize is the authentication tag length in bytes (128 bits).
	TagSize = 16
	// MinIterations is the lowest PBKDF2 iteration count accepted.
	MinIterations = 10000
	// DefaultIterations is the PBKDF2 iteration count used when none is configured.
	DefaultIterations = 65536
)
