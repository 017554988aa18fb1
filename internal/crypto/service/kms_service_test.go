package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"gocloud.dev/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

// wrapSecret encrypts secret with the keeper at keyURI and base64 encodes it.
func wrapSecret(t *testing.T, keyURI string, secret []byte) string {
	t.Helper()
	ctx := context.Background()
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeper.Close())
	}()

	ciphertext, err := keeper.Encrypt(ctx, secret)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(ciphertext)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		assert.NoError(t, keeper.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})
}

func TestKMSService_UnwrapSecret(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()
	keyURI := generateLocalSecretsURI(t)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		wrapped := wrapSecret(t, keyURI, []byte("field-secret"))

		secret, err := kmsService.UnwrapSecret(ctx, keyURI, wrapped)
		require.NoError(t, err)
		assert.Equal(t, []byte("field-secret"), secret)
	})

	t.Run("Error_WrongKeeper", func(t *testing.T) {
		wrapped := wrapSecret(t, keyURI, []byte("field-secret"))

		secret, err := kmsService.UnwrapSecret(ctx, generateLocalSecretsURI(t), wrapped)
		assert.Error(t, err)
		assert.Nil(t, secret)
	})

	t.Run("Error_NotBase64", func(t *testing.T) {
		_, err := kmsService.UnwrapSecret(ctx, keyURI, "%%%")
		assert.ErrorContains(t, err, "failed to decode wrapped secret")
	})

	t.Run("Error_InvalidCiphertext", func(t *testing.T) {
		wrapped := base64.StdEncoding.EncodeToString([]byte("not a valid ciphertext"))
		_, err := kmsService.UnwrapSecret(ctx, keyURI, wrapped)
		assert.ErrorContains(t, err, "failed to unwrap secret")
	})
}
