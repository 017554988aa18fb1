// Package testutil provides helpers for document store integration tests.
//
// Environment Variables:
//   - TEST_MONGODB_URI: MongoDB connection string (default: mongodb://localhost:27018)
//
// Usage:
//
//	coll := testutil.SetupMongoCollection(t)
//	crypt := testutil.NewFieldCrypt(t)
//
// Every call gets its own collection, dropped when the test ends. Tests are
// skipped when no server answers.
package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	cryptoDomain "github.com/tracktainment/duxmanager/internal/crypto/domain"
	"github.com/tracktainment/duxmanager/internal/crypto/fieldcrypt"
	cryptoService "github.com/tracktainment/duxmanager/internal/crypto/service"
	"github.com/tracktainment/duxmanager/internal/database"
)

const (
	defaultMongoTestURI = "mongodb://localhost:27018"
	testDatabase        = "dux-manager-test"
)

// GetMongoTestURI returns the MongoDB test URI, checking the environment variable first.
func GetMongoTestURI() string {
	if uri := os.Getenv("TEST_MONGODB_URI"); uri != "" {
		return uri
	}
	return defaultMongoTestURI
}

// TestDatabaseConfig returns a database.Config for a collection unique to the test.
func TestDatabaseConfig(t *testing.T) database.Config {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return database.Config{
		URI:            GetMongoTestURI(),
		Database:       testDatabase,
		Collection:     fmt.Sprintf("%s_%s", name, uuid.NewString()[:8]),
		ConnectTimeout: 2 * time.Second,
		MaxPoolSize:    5,
	}
}

// SetupMongoCollection connects to the test server, creates the collection
// indexes and registers cleanup. It skips the test when the server is unreachable.
func SetupMongoCollection(t *testing.T) *mongo.Collection {
	t.Helper()
	ctx := context.Background()
	cfg := TestDatabaseConfig(t)

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	coll := database.Collection(client, cfg)
	_, err = database.EnsureIndexes(ctx, coll)
	require.NoError(t, err, "failed to create indexes")

	t.Cleanup(func() {
		_ = coll.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return coll
}

// NewFieldCipher returns an AES-GCM field cipher derived from fixed test parameters.
func NewFieldCipher(t *testing.T) *cryptoService.FieldCipherService {
	t.Helper()
	cipher, err := cryptoService.NewFieldCipherFromSecret(
		cryptoService.NewAEADManager(),
		cryptoDomain.KeyDerivationParams{
			Secret:     []byte("test-secret"),
			Salt:       []byte("test-salt"),
			Iterations: cryptoDomain.MinIterations,
		},
		cryptoDomain.AESGCM,
	)
	require.NoError(t, err)
	return cipher
}

// NewFieldCrypt returns a strict encryption middleware over NewFieldCipher.
func NewFieldCrypt(t *testing.T) *fieldcrypt.Middleware {
	t.Helper()
	return fieldcrypt.NewMiddleware(NewFieldCipher(t), true, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
