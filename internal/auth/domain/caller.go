// Package domain defines the authenticated caller and its context helpers.
package domain

import (
	"context"
)

// Caller is the identity extracted from a verified bearer token. Subject holds
// the digital user id the token was issued for.
type Caller struct {
	Subject string
}

type callerKey struct{}

// WithCaller stores an authenticated caller in the context.
func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCaller retrieves the authenticated caller from the context.
func GetCaller(ctx context.Context) (*Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(*Caller)
	return caller, ok && caller != nil
}

// RequireCaller checks that the context carries a caller whose subject equals
// digitalUserID. Missing callers yield ErrMissingToken.
func RequireCaller(ctx context.Context, digitalUserID string) error {
	caller, ok := GetCaller(ctx)
	if !ok {
		return ErrMissingToken
	}
	if caller.Subject != digitalUserID {
		return ErrCallerMismatch
	}
	return nil
}
