package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
)

var _ port.CategoriesStorage = (*CategoriesRepository)(nil)

type CategoriesRepository struct {
	coll collection[storage.Category]
}

func NewCategoriesRepository(db DB) CategoriesRepository {
	return CategoriesRepository{newCollection[storage.Category](db, categoriesCollection)}
}

func (r CategoriesRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CategoriesRepository.ListCategories"

	ds, err := r.coll.find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, len(ds))
	for i, d := range ds {
		cs[i] = d.ToDomain()
	}
	return cs, nil
}

func (r CategoriesRepository) ReadCategory(
	ctx context.Context, id string,
) (domain.Category, error) {
	const op = "CategoriesRepository.ReadCategory"

	d, err := r.coll.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r CategoriesRepository) FindCategoryByName(
	ctx context.Context, name string,
) (domain.Category, error) {
	const op = "CategoriesRepository.FindCategoryByName"

	d, err := r.coll.findOne(ctx, bson.M{"nameKey": storage.CategoryNameKey(name)})
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r CategoriesRepository) StoreCategory(ctx context.Context, c domain.Category) error {
	const op = "CategoriesRepository.StoreCategory"

	d := storage.CategoryFromDomain(c)
	if err := r.coll.replace(ctx, bson.M{"id": c.ID}, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
