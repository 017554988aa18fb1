// Package repository persists digital user aggregates, assets embedded, in a
// MongoDB collection. Sensitive fields are encrypted by the field encryption
// middleware right before every write and decrypted right after every read.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tracktainment/duxmanager/internal/crypto/fieldcrypt"
	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

// FieldCrypt runs the encrypt and decrypt traversals over persisted documents.
type FieldCrypt interface {
	Encrypt(root fieldcrypt.Walkable) error
	Decrypt(root fieldcrypt.Walkable) error
}

// MongoDigitalUserRepository implements digital user persistence for MongoDB.
type MongoDigitalUserRepository struct {
	coll  *mongo.Collection
	crypt FieldCrypt
	now   func() time.Time
}

// Create stores a new digital user unless its composite key is already taken.
func (m *MongoDigitalUserRepository) Create(
	ctx context.Context,
	in userDomain.DigitalUserCreate,
) (*userDomain.DigitalUser, error) {
	idp := in.IdentityProviderInformation
	exists, err := m.exists(ctx, compositeKeyFilter(idp.Subject, string(idp.IdentityProvider), idp.TenantID))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, userDomain.ErrDigitalUserAlreadyExists
	}

	doc, err := CreateToUserDocument(in)
	if err != nil {
		return nil, err
	}
	doc.CreatedAt = m.timestamp()

	if err := m.crypt.Encrypt(doc); err != nil {
		return nil, err
	}

	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, userDomain.ErrDigitalUserAlreadyExists
		}
		return nil, apperrors.Wrap(err, "failed to create digital user")
	}

	if err := m.crypt.Decrypt(doc); err != nil {
		return nil, err
	}
	return DocumentToUser(doc)
}

// FindByID retrieves a digital user by identifier.
func (m *MongoDigitalUserRepository) FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error) {
	doc, err := m.FindDocument(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}
	return DocumentToUser(doc)
}

// FindByCompositeKey retrieves a digital user by its (subject, provider, tenant) triple.
func (m *MongoDigitalUserRepository) FindByCompositeKey(
	ctx context.Context,
	subject string,
	identityProvider userDomain.IdentityProvider,
	tenantID string,
) (*userDomain.DigitalUser, error) {
	doc, err := m.FindDocument(ctx, compositeKeyFilter(subject, string(identityProvider), tenantID))
	if err != nil {
		return nil, err
	}
	return DocumentToUser(doc)
}

// Delete removes exactly one digital user. Returns ErrDigitalUserNotFound when nothing was removed.
func (m *MongoDigitalUserRepository) Delete(ctx context.Context, id string) error {
	result, err := m.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete digital user")
	}
	if result.DeletedCount == 0 {
		return userDomain.ErrDigitalUserNotFound
	}
	return nil
}

// ExistsByID reports whether a digital user with id is stored.
func (m *MongoDigitalUserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return m.exists(ctx, bson.D{{Key: "_id", Value: id}})
}

// FindDocument fetches the first document matching filter and decrypts it.
// Optional projections restrict the returned fields.
func (m *MongoDigitalUserRepository) FindDocument(
	ctx context.Context,
	filter any,
	opts ...options.Lister[options.FindOneOptions],
) (*DigitalUserDocument, error) {
	var doc DigitalUserDocument
	if err := m.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userDomain.ErrDigitalUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find digital user")
	}

	if err := m.crypt.Decrypt(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MongoDigitalUserRepository) exists(ctx context.Context, filter any) (bool, error) {
	count, err := m.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check digital user existence")
	}
	return count > 0, nil
}

// timestamp returns the current UTC time at the store's millisecond precision.
func (m *MongoDigitalUserRepository) timestamp() time.Time {
	return m.now().UTC().Truncate(time.Millisecond)
}

func compositeKeyFilter(subject, identityProvider, tenantID string) bson.D {
	return bson.D{
		{Key: "identityProviderInformation.subject", Value: subject},
		{Key: "identityProviderInformation.identityProvider", Value: identityProvider},
		{Key: "identityProviderInformation.tenantId", Value: tenantID},
	}
}

// NewMongoDigitalUserRepository creates a new MongoDB digital user repository.
func NewMongoDigitalUserRepository(coll *mongo.Collection, crypt FieldCrypt) *MongoDigitalUserRepository {
	return &MongoDigitalUserRepository{coll: coll, crypt: crypt, now: time.Now}
}
