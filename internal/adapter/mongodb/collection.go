package mongodb

import (
	"context"
	"errors"

	"github.com/niksmo/storefront/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// A collection reads and writes documents of type D.
type collection[D any] struct {
	c *mongo.Collection
}

func newCollection[D any](db DB, name string) collection[D] {
	return collection[D]{db.db.Collection(name)}
}

func (c collection[D]) find(
	ctx context.Context, filter bson.M, opts ...*options.FindOptions,
) ([]D, error) {
	cur, err := c.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	ds := make([]D, 0)
	if err := cur.All(ctx, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c collection[D]) findOne(ctx context.Context, filter bson.M) (D, error) {
	var d D
	err := c.c.FindOne(ctx, filter).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return d, domain.ErrNotFound
		}
		return d, err
	}
	return d, nil
}

// replace writes the whole document, inserting it when absent.
func (c collection[D]) replace(ctx context.Context, filter bson.M, d D) error {
	_, err := c.c.ReplaceOne(ctx, filter, d, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (c collection[D]) deleteOne(ctx context.Context, filter bson.M) error {
	res, err := c.c.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
