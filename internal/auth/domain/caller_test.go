package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

func TestGetCaller(t *testing.T) {
	t.Run("Success_RoundTrip", func(t *testing.T) {
		ctx := WithCaller(context.Background(), &Caller{Subject: "user-1"})

		caller, ok := GetCaller(ctx)
		require.True(t, ok)
		assert.Equal(t, "user-1", caller.Subject)
	})

	t.Run("Error_Absent", func(t *testing.T) {
		caller, ok := GetCaller(context.Background())
		assert.False(t, ok)
		assert.Nil(t, caller)
	})

	t.Run("Error_NilCaller", func(t *testing.T) {
		ctx := WithCaller(context.Background(), nil)
		_, ok := GetCaller(ctx)
		assert.False(t, ok)
	})
}

func TestRequireCaller(t *testing.T) {
	t.Run("Success_Match", func(t *testing.T) {
		ctx := WithCaller(context.Background(), &Caller{Subject: "user-1"})
		assert.NoError(t, RequireCaller(ctx, "user-1"))
	})

	t.Run("Error_Mismatch", func(t *testing.T) {
		ctx := WithCaller(context.Background(), &Caller{Subject: "user-1"})

		err := RequireCaller(ctx, "user-2")
		assert.ErrorIs(t, err, ErrCallerMismatch)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Error_NoCaller", func(t *testing.T) {
		err := RequireCaller(context.Background(), "user-1")
		assert.ErrorIs(t, err, ErrMissingToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
