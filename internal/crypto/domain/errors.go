package domain

import (
	"github.com/tracktainment/duxmanager/internal/errors"
)

// Field encryption error definitions.
//
// Every error here is fatal for the request that hit it. Cipher setup problems
// and envelope failures wrap ErrConfiguration so they surface as 500 and are
// never mistaken for caller mistakes.
var (
	// ErrUnsupportedAlgorithm indicates the configured AEAD algorithm is unknown.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key that is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrWeakKeyDerivation indicates a missing secret or salt, or too few PBKDF2 iterations.
	ErrWeakKeyDerivation = errors.Wrap(errors.ErrConfiguration, "weak key derivation parameters")

	// ErrDecryptionFailed indicates an envelope could not be opened.
	//
	// Covers authentication tag mismatch, a wrong key, malformed base64 and
	// truncated envelopes. The specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrConfiguration, "decryption failed")

	// ErrUnsupportedSensitiveField indicates a field declared sensitive that is not a string.
	ErrUnsupportedSensitiveField = errors.Wrap(errors.ErrConfiguration, "unsupported sensitive field type")
)
