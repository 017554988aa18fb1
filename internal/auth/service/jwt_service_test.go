package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

func TestJWTService_Verify(t *testing.T) {
	t.Run("Success_IssuedToken", func(t *testing.T) {
		svc := NewJWTService("test-secret", "duxmanager")

		token, err := svc.Issue("user-1", time.Hour)
		require.NoError(t, err)

		caller, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", caller.Subject)
	})

	t.Run("Success_NoIssuerCheck", func(t *testing.T) {
		issuer := NewJWTService("test-secret", "someone-else")
		verifier := NewJWTService("test-secret", "")

		token, err := issuer.Issue("user-1", time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("Error_WrongSecret", func(t *testing.T) {
		token, err := NewJWTService("secret-a", "").Issue("user-1", time.Hour)
		require.NoError(t, err)

		_, err = NewJWTService("secret-b", "").Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Error_WrongIssuer", func(t *testing.T) {
		token, err := NewJWTService("test-secret", "other").Issue("user-1", time.Hour)
		require.NoError(t, err)

		_, err = NewJWTService("test-secret", "duxmanager").Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_Expired", func(t *testing.T) {
		svc := NewJWTService("test-secret", "")
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := svc.Issue("user-1", time.Hour)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_EmptySubject", func(t *testing.T) {
		svc := NewJWTService("test-secret", "")

		token, err := svc.Issue("", time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_UnexpectedAlgorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "user-1"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = NewJWTService("test-secret", "").Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_Garbage", func(t *testing.T) {
		_, err := NewJWTService("test-secret", "").Verify("not-a-token")
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}
