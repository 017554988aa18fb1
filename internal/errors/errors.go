// Package errors defines the error kinds shared by every module. Use cases and
// repositories wrap one of these kinds with context; the HTTP layer maps the
// kind to a status code and never inspects the message.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrNotFound indicates the requested digital user or asset does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation, such as a repeated
	// identity provider triple or external id.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the request is well formed but semantically invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a missing or unacceptable bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConfiguration indicates a fatal misconfiguration detected at runtime,
	// such as an unusable cipher or a sensitive field of an unsupported type.
	ErrConfiguration = errors.New("configuration error")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, keeping err in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
