package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	coll collection[storage.Product]
}

func NewProductsRepository(db DB) ProductsRepository {
	return ProductsRepository{newCollection[storage.Product](db, productsCollection)}
}

func (r ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductsRepository.ListProducts"
	return r.findProducts(ctx, op, bson.M{})
}

func (r ProductsRepository) FindProducts(
	ctx context.Context, featured, isNew bool,
) ([]domain.Product, error) {
	const op = "ProductsRepository.FindProducts"

	filter := bson.M{}
	if featured {
		filter["isFeatured"] = true
	}
	if isNew {
		filter["isNew"] = true
	}
	return r.findProducts(ctx, op, filter)
}

func (r ProductsRepository) ReadProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "ProductsRepository.ReadProduct"

	d, err := r.coll.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := d.ToDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) StoreProduct(ctx context.Context, p domain.Product) error {
	const op = "ProductsRepository.StoreProduct"

	d := storage.ProductFromDomain(p)
	if err := r.coll.replace(ctx, bson.M{"id": p.ID}, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) DeleteProduct(ctx context.Context, id string) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := r.coll.deleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) findProducts(
	ctx context.Context, op string, filter bson.M,
) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds, err := r.coll.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return storage.ProductsToDomain(ds), nil
}
