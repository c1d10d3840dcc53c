package repo

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const DefaultMongoURI = "mongodb://127.0.0.1:27017"

// ResolveMongoURI picks the connection string: explicit value first, then
// MONGODB_URI, then MONGO_URI, then the local default.
func ResolveMongoURI(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return DefaultMongoURI
}

// Open connects to the store and verifies the connection with a ping
// before anyone builds on it.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}
