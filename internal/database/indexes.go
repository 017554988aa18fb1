package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CompositeKeyIndexName is the unique index over the identity provider triple.
const CompositeKeyIndexName = "uk_identity_provider_information"

// IndexModels returns the indexes the digital users collection relies on.
//
// Document ids live in "_id" and are unique by default. Asset external ids are
// unique per user only, which a multikey index cannot express inside a single
// document; writes enforce that with a conditional push instead.
func IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "identityProviderInformation.subject", Value: 1},
				{Key: "identityProviderInformation.identityProvider", Value: 1},
				{Key: "identityProviderInformation.tenantId", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(CompositeKeyIndexName),
		},
		{
			Keys:    bson.D{{Key: "_id", Value: 1}, {Key: "assets.externalId", Value: 1}},
			Options: options.Index().SetName("idx_assets_external_id"),
		},
	}
}

// EnsureIndexes creates any missing index and returns the names reported by the server.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	names, err := coll.Indexes().CreateMany(ctx, IndexModels())
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return names, nil
}
