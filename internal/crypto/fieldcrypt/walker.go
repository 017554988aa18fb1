// Package fieldcrypt encrypts and decrypts the sensitive fields of persisted
// object graphs.
//
// Persisted types opt in by implementing Walkable. Each WalkSensitive method
// declares its own sensitive string fields with Walker.Field, hands every
// child node to Walker.Walk (or the slice and map helpers), and calls the
// WalkSensitive method of any embedded base type so that fields declared on
// ancestors are processed too. Nodes are tracked by pointer identity, so
// shared references are transformed once and cyclic graphs terminate.
package fieldcrypt

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

// Direction selects the transform applied to sensitive fields.
type Direction int

const (
	// Encrypt replaces plaintext with envelopes.
	Encrypt Direction = iota
	// Decrypt replaces envelopes with plaintext.
	Decrypt
)

// String returns the direction name used in logs.
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Cipher transforms one optional string value.
type Cipher interface {
	Encrypt(plaintext *string) (*string, error)
	Decrypt(envelope *string) (*string, error)
}

// Walkable is implemented by persisted types holding sensitive fields or
// children that do. Implementations must use pointer receivers and must
// tolerate a nil receiver.
type Walkable interface {
	WalkSensitive(w *Walker) error
}

// Walker carries the state of a single traversal.
type Walker struct {
	cipher    Cipher
	direction Direction
	strict    bool
	logger    *slog.Logger
	visited   map[Walkable]struct{}
}

func newWalker(cipher Cipher, direction Direction, strict bool, logger *slog.Logger) *Walker {
	return &Walker{
		cipher:    cipher,
		direction: direction,
		strict:    strict,
		logger:    logger,
		visited:   make(map[Walkable]struct{}),
	}
}

// Direction returns the transform applied by this traversal.
func (w *Walker) Direction() Direction {
	return w.direction
}

// Walk visits node unless it is nil or was already visited in this traversal.
func (w *Walker) Walk(node Walkable) error {
	if node == nil {
		return nil
	}
	if _, seen := w.visited[node]; seen {
		return nil
	}
	w.visited[node] = struct{}{}
	return node.WalkSensitive(w)
}

// Field transforms a sensitive field in place.
//
// value must be a *string or a **string. A nil **string target, or an empty
// plain string, is an absent value and is left untouched. Any other type is
// rejected with ErrUnsupportedSensitiveField in strict mode and skipped with a
// warning otherwise.
func (w *Walker) Field(name string, value any) error {
	switch v := value.(type) {
	case *string:
		if v == nil || *v == "" {
			return nil
		}
		out, err := w.transform(name, v)
		if err != nil {
			return err
		}
		*v = *out
		return nil
	case **string:
		if v == nil || *v == nil {
			return nil
		}
		out, err := w.transform(name, *v)
		if err != nil {
			return err
		}
		*v = out
		return nil
	default:
		if w.strict {
			return fmt.Errorf("%w: field %q has type %T", cryptoDomain.ErrUnsupportedSensitiveField, name, value)
		}
		w.logger.Warn("skipping sensitive field of unsupported type",
			slog.String("field", name),
			slog.String("type", fmt.Sprintf("%T", value)),
			slog.String("direction", w.direction.String()),
		)
		return nil
	}
}

func (w *Walker) transform(name string, value *string) (*string, error) {
	var (
		out *string
		err error
	)
	if w.direction == Decrypt {
		out, err = w.cipher.Decrypt(value)
	} else {
		out, err = w.cipher.Encrypt(value)
	}
	if err != nil {
		return nil, fmt.Errorf("%s field %q: %w", w.direction, name, err)
	}
	return out, nil
}

// WalkSlice visits every element of a slice of struct values in place.
func WalkSlice[T any, PT interface {
	*T
	Walkable
}](w *Walker, items []T) error {
	for i := range items {
		if err := w.Walk(PT(&items[i])); err != nil {
			return err
		}
	}
	return nil
}

// WalkEach visits every element of a slice of Walkable references.
func WalkEach[T Walkable](w *Walker, items []T) error {
	for _, item := range items {
		if err := w.Walk(item); err != nil {
			return err
		}
	}
	return nil
}

// WalkMapValues visits every value of a map. Keys are never transformed.
func WalkMapValues[K comparable, V Walkable](w *Walker, m map[K]V) error {
	for _, value := range m {
		if err := w.Walk(value); err != nil {
			return err
		}
	}
	return nil
}
