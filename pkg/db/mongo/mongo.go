// Package mongo implements the project repository on top of a MongoDB
// collection.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "projects"

type Database struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenDatabase connects to a MongoDB deployment and prepares the projects
// collection for use.
func OpenDatabase(ctx context.Context, uri, dbName string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo: failed to ping: %w", err)
	}

	return DatabaseFromClient(ctx, client, dbName)
}

// DatabaseFromClient prepares the projects collection on an existing client.
// The unique index on title is the final arbiter for duplicate titles;
// creating it is idempotent, so it runs on every start.
func DatabaseFromClient(ctx context.Context, client *mongo.Client, dbName string) (*Database, error) {
	coll := client.Database(dbName).Collection(collectionName)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to create title index: %w", err)
	}

	return &Database{
		client: client,
		coll:   coll,
	}, nil
}

func (db *Database) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo: failed to disconnect: %w", err)
	}

	return nil
}
