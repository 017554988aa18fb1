package fieldcrypt

import (
	"log/slog"
)

// Middleware runs encrypt and decrypt traversals over persisted documents.
// Repositories call Encrypt right before a write and Decrypt right after a read.
type Middleware struct {
	cipher Cipher
	strict bool
	logger *slog.Logger
}

// NewMiddleware creates a Middleware. With strict disabled, sensitive fields of
// unsupported types are skipped with a warning instead of failing the traversal.
func NewMiddleware(cipher Cipher, strict bool, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{cipher: cipher, strict: strict, logger: logger}
}

// Encrypt replaces every reachable sensitive plaintext in root with its envelope.
func (m *Middleware) Encrypt(root Walkable) error {
	return m.Process(root, Encrypt)
}

// Decrypt replaces every reachable sensitive envelope in root with its plaintext.
func (m *Middleware) Decrypt(root Walkable) error {
	return m.Process(root, Decrypt)
}

// Process walks root in the given direction with a fresh visited set.
func (m *Middleware) Process(root Walkable, direction Direction) error {
	return newWalker(m.cipher, direction, m.strict, m.logger).Walk(root)
}
