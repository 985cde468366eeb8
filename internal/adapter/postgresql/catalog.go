package postgresql

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var (
	_ port.CategoriesStorage = (*CategoriesRepository)(nil)
	_ port.HeroImagesStorage = (*HeroImagesRepository)(nil)
)

type CategoriesRepository struct {
	docs documents[storage.Category]
}

func NewCategoriesRepository(db sqldb) CategoriesRepository {
	return CategoriesRepository{documents[storage.Category]{db, "categories"}}
}

func (r CategoriesRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CategoriesRepository.ListCategories"

	ds, err := r.docs.selectMany(ctx, "")
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

	d, err := r.docs.selectOne(ctx, "id = $1", id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r CategoriesRepository) FindCategoryByName(
	ctx context.Context, name string,
) (domain.Category, error) {
	const op = "CategoriesRepository.FindCategoryByName"

	d, err := r.docs.selectOne(ctx, "name_key = $1", storage.CategoryNameKey(name))
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r CategoriesRepository) StoreCategory(ctx context.Context, c domain.Category) error {
	const op = "CategoriesRepository.StoreCategory"

	d := storage.CategoryFromDomain(c)
	err := r.docs.upsert(ctx, "id", c.ID, d, []string{"name_key"}, []any{d.NameKey})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type HeroImagesRepository struct {
	docs documents[storage.HeroImage]
}

func NewHeroImagesRepository(db sqldb) HeroImagesRepository {
	return HeroImagesRepository{documents[storage.HeroImage]{db, "hero_images"}}
}

func (r HeroImagesRepository) ListHeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	const op = "HeroImagesRepository.ListHeroImages"

	ds, err := r.docs.selectMany(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hs := make([]domain.HeroImage, len(ds))
	for i, d := range ds {
		hs[i] = d.ToDomain()
	}
	return hs, nil
}

func (r HeroImagesRepository) ReadHeroImage(
	ctx context.Context, id string,
) (domain.HeroImage, error) {
	const op = "HeroImagesRepository.ReadHeroImage"

	d, err := r.docs.selectOne(ctx, "id = $1", id)
	if err != nil {
		return domain.HeroImage{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r HeroImagesRepository) StoreHeroImage(ctx context.Context, h domain.HeroImage) error {
	const op = "HeroImagesRepository.StoreHeroImage"

	d := storage.HeroImageFromDomain(h)
	if err := r.docs.upsert(ctx, "id", h.ID, d, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r HeroImagesRepository) DeleteHeroImage(ctx context.Context, id string) error {
	const op = "HeroImagesRepository.DeleteHeroImage"

	if err := r.docs.delete(ctx, "id", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
