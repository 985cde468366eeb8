package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	docs documents[storage.Product]
}

func NewProductsRepository(db sqldb) ProductsRepository {
	return ProductsRepository{documents[storage.Product]{db, "products"}}
}

func (r ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductsRepository.ListProducts"
	return r.selectProducts(ctx, op, "")
}

func (r ProductsRepository) FindProducts(
	ctx context.Context, featured, isNew bool,
) ([]domain.Product, error) {
	const op = "ProductsRepository.FindProducts"

	var conds []string
	if featured {
		conds = append(conds, "(doc->>'isFeatured')::boolean")
	}
	if isNew {
		conds = append(conds, "(doc->>'isNew')::boolean")
	}
	return r.selectProducts(ctx, op, strings.Join(conds, " AND "))
}

func (r ProductsRepository) ReadProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "ProductsRepository.ReadProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	d, err := r.docs.selectOne(ctx, "id = $1", id)
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
	if err := r.docs.upsert(ctx, "id", p.ID, d, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) DeleteProduct(ctx context.Context, id string) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := r.docs.delete(ctx, "id", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) selectProducts(
	ctx context.Context, op string, where string,
) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds, err := r.docs.selectMany(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return storage.ProductsToDomain(ds), nil
}
