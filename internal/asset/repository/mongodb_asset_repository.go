// Package repository implements the asset operations on the asset list
// embedded in each digital user document.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
	userRepository "github.com/tracktainment/duxmanager/internal/digitaluser/repository"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

// DigitalUserStore is the part of the digital user repository the asset operations rely on.
type DigitalUserStore interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindDocument(
		ctx context.Context,
		filter any,
		opts ...options.Lister[options.FindOneOptions],
	) (*userRepository.DigitalUserDocument, error)
}

// MongoAssetRepository implements asset persistence for MongoDB.
//
// Appends and removals are single-document array updates ($push, $pull), so
// they rely on the store's per-document atomicity and never rewrite the rest
// of the user document.
type MongoAssetRepository struct {
	coll  *mongo.Collection
	users DigitalUserStore
	crypt userRepository.FieldCrypt
	now   func() time.Time
}

// Create appends a new asset to the user's list.
//
// Returns ErrAssetAlreadyExists when the user's list already holds the external
// id and ErrDigitalUserNotFound when the user does not exist. The push is
// conditional on the external id being absent, which closes the race between
// the probe and the write.
func (m *MongoAssetRepository) Create(
	ctx context.Context,
	digitalUserID string,
	in assetDomain.AssetCreate,
) (*assetDomain.Asset, error) {
	exists, err := m.existsByExternalID(ctx, digitalUserID, in.ExternalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, assetDomain.ErrAssetAlreadyExists
	}

	if err := m.requireUser(ctx, digitalUserID); err != nil {
		return nil, err
	}

	doc, err := userRepository.CreateToAssetDocument(in)
	if err != nil {
		return nil, err
	}
	doc.CreatedAt = m.now().UTC().Truncate(time.Millisecond)

	if err := m.crypt.Encrypt(&doc); err != nil {
		return nil, err
	}

	filter := bson.D{
		{Key: "_id", Value: digitalUserID},
		{Key: "assets.externalId", Value: bson.D{{Key: "$ne", Value: in.ExternalID}}},
	}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "assets", Value: doc}}}}

	result, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create asset")
	}
	if result.MatchedCount == 0 {
		return nil, m.explainMiss(ctx, digitalUserID, in.ExternalID)
	}

	if err := m.crypt.Decrypt(&doc); err != nil {
		return nil, err
	}
	asset, err := userRepository.DocumentToAsset(doc)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// FindByExternalID fetches the single matching element of the user's list.
func (m *MongoAssetRepository) FindByExternalID(
	ctx context.Context,
	digitalUserID string,
	externalID string,
) (*assetDomain.Asset, error) {
	doc, err := m.users.FindDocument(
		ctx,
		externalIDFilter(digitalUserID, externalID),
		options.FindOne().SetProjection(bson.D{{Key: "assets.$", Value: 1}}),
	)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, assetDomain.ErrAssetNotFound
		}
		return nil, err
	}
	if len(doc.Assets) == 0 {
		return nil, assetDomain.ErrAssetNotFound
	}

	asset, err := userRepository.DocumentToAsset(doc.Assets[0])
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListByCriteria filters the user's asset list in process, then paginates.
// An empty list is returned when nothing matches.
func (m *MongoAssetRepository) ListByCriteria(
	ctx context.Context,
	criteria assetDomain.ListCriteria,
) ([]assetDomain.Asset, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	doc, err := m.users.FindDocument(
		ctx,
		bson.D{{Key: "_id", Value: criteria.DigitalUserID}},
		options.FindOne().SetProjection(bson.D{{Key: "assets", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	assets, err := userRepository.DocumentsToAssets(doc.Assets)
	if err != nil {
		return nil, err
	}
	return criteria.Apply(assets), nil
}

// Delete removes the asset with externalID from the user's list.
// Returns ErrAssetNotFound when the user or the asset does not exist.
func (m *MongoAssetRepository) Delete(ctx context.Context, digitalUserID string, externalID string) error {
	exists, err := m.existsByExternalID(ctx, digitalUserID, externalID)
	if err != nil {
		return err
	}
	if !exists {
		return assetDomain.ErrAssetNotFound
	}

	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: "assets", Value: bson.D{{Key: "externalId", Value: externalID}}},
	}}}

	result, err := m.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: digitalUserID}}, update)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete asset")
	}
	if result.ModifiedCount == 0 {
		return assetDomain.ErrAssetNotFound
	}
	return nil
}

func (m *MongoAssetRepository) existsByExternalID(
	ctx context.Context,
	digitalUserID string,
	externalID string,
) (bool, error) {
	count, err := m.coll.CountDocuments(
		ctx,
		externalIDFilter(digitalUserID, externalID),
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check asset existence")
	}
	return count > 0, nil
}

func (m *MongoAssetRepository) requireUser(ctx context.Context, digitalUserID string) error {
	exists, err := m.users.ExistsByID(ctx, digitalUserID)
	if err != nil {
		return err
	}
	if !exists {
		return userDomain.ErrDigitalUserNotFound
	}
	return nil
}

// explainMiss tells a lost race on the external id apart from a user removed
// between the probe and the conditional push.
func (m *MongoAssetRepository) explainMiss(ctx context.Context, digitalUserID, externalID string) error {
	exists, err := m.existsByExternalID(ctx, digitalUserID, externalID)
	if err != nil {
		return err
	}
	if exists {
		return assetDomain.ErrAssetAlreadyExists
	}
	return userDomain.ErrDigitalUserNotFound
}

func externalIDFilter(digitalUserID, externalID string) bson.D {
	return bson.D{
		{Key: "_id", Value: digitalUserID},
		{Key: "assets.externalId", Value: externalID},
	}
}

// NewMongoAssetRepository creates a new MongoDB asset repository over the digital users collection.
func NewMongoAssetRepository(
	coll *mongo.Collection,
	users DigitalUserStore,
	crypt userRepository.FieldCrypt,
) *MongoAssetRepository {
	return &MongoAssetRepository{coll: coll, users: users, crypt: crypt, now: time.Now}
}
