package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
)

const (
	// DefaultSaltSize is the byte length of generated PBKDF2 salts.
	DefaultSaltSize = 16
	secretSize      = cryptoDomain.KeySize
)

// keeperOpener opens KMS keepers. cryptoService.KMSService satisfies it.
type keeperOpener interface {
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}

// RunGenerateSalt prints a random base64 salt for ENCRYPTION_SALT.
func RunGenerateSalt(out io.Writer, size int, format string) error {
	if size < 8 {
		return fmt.Errorf("salt size must be at least 8 bytes, got %d", size)
	}

	salt := make([]byte, size)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	return writeEnv(out, format, []string{"ENCRYPTION_SALT"}, map[string]string{
		"ENCRYPTION_SALT": base64.StdEncoding.EncodeToString(salt),
	})
}

// RunGenerateSecret prints a random 32-byte field encryption secret.
//
// With keyURI set the secret is wrapped by the KMS keeper and printed together
// with ENCRYPTION_SECRET_KMS_KEY_URI; the server unwraps it at startup. The
// plaintext secret is zeroed before returning.
func RunGenerateSecret(
	ctx context.Context,
	kmsService keeperOpener,
	logger *slog.Logger,
	out io.Writer,
	keyURI string,
	format string,
) error {
	secret := make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}
	defer cryptoDomain.Zero(secret)

	if keyURI == "" {
		logger.Warn("secret generated without KMS wrapping")
		return writeEnv(out, format, []string{"ENCRYPTION_SECRET_KEY"}, map[string]string{
			"ENCRYPTION_SECRET_KEY": base64.StdEncoding.EncodeToString(secret),
		})
	}

	keeperInterface, err := kmsService.OpenKeeper(ctx, keyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeperInterface.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	keeper, ok := keeperInterface.(interface {
		Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	})
	if !ok {
		return fmt.Errorf("KMS keeper does not support encryption")
	}

	// the raw bytes are wrapped; unwrapping yields the same bytes the KDF consumes
	ciphertext, err := keeper.Encrypt(ctx, secret)
	if err != nil {
		return fmt.Errorf("failed to wrap secret with KMS: %w", err)
	}

	logger.Info("secret wrapped with KMS")

	return writeEnv(
		out,
		format,
		[]string{"ENCRYPTION_SECRET_KEY", "ENCRYPTION_SECRET_KMS_KEY_URI"},
		map[string]string{
			"ENCRYPTION_SECRET_KEY":         base64.StdEncoding.EncodeToString(ciphertext),
			"ENCRYPTION_SECRET_KMS_KEY_URI": keyURI,
		},
	)
}
