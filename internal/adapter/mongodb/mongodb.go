package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection   = "products"
	categoriesCollection = "categories"
	heroImagesCollection = "heroimages"
	usersCollection      = "users"
	cartsCollection      = "carts"
	wishlistsCollection  = "wishlists"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client and waits until the primary answers a ping.
func Connect(ctx context.Context, uri, database string) (DB, error) {
	const op = "mongodb.Connect"
	log := slog.With("op", op)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return DB{}, fmt.Errorf("%s: %w", op, err)
	}

	policy := retry.Policy{
		Name:     "mongodb ping",
		Attempts: 5,
		Backoff:  retry.ExponentialBackoff(200*time.Millisecond, 3*time.Second),
	}
	err = retry.Do(ctx, policy, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}

	log.Info("database is available", "database", database)
	return DB{client: client, db: client.Database(database)}, nil
}

// EnsureIndexes creates the unique keys the repositories rely on.
func (d DB) EnsureIndexes(ctx context.Context) error {
	const op = "DB.EnsureIndexes"

	unique := map[string][]string{
		productsCollection:   {"id"},
		categoriesCollection: {"id", "nameKey"},
		heroImagesCollection: {"id"},
		usersCollection:      {"id", "mobile"},
		cartsCollection:      {"userId"},
		wishlistsCollection:  {"userId"},
	}

	for coll, keys := range unique {
		models := make([]mongo.IndexModel, len(keys))
		for i, k := range keys {
			models[i] = mongo.IndexModel{
				Keys:    bson.D{{Key: k, Value: 1}},
				Options: options.Index().SetUnique(true),
			}
		}
		_, err := d.db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("%s: collection %q: %w", op, coll, err)
		}
	}
	return nil
}

func (d DB) Close(ctx context.Context) {
	const op = "DB.Close"
	log := slog.With("op", op)

	log.Info("closing mongodb client...")

	if err := d.client.Disconnect(ctx); err != nil {
		log.Error("failed to disconnect", "err", err)
		return
	}
	log.Info("mongodb client is closed")
}
