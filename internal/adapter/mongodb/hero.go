package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
)

var _ port.HeroImagesStorage = (*HeroImagesRepository)(nil)

type HeroImagesRepository struct {
	coll collection[storage.HeroImage]
}

func NewHeroImagesRepository(db DB) HeroImagesRepository {
	return HeroImagesRepository{newCollection[storage.HeroImage](db, heroImagesCollection)}
}

func (r HeroImagesRepository) ListHeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	const op = "HeroImagesRepository.ListHeroImages"

	ds, err := r.coll.find(ctx, bson.M{})
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

	d, err := r.coll.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return domain.HeroImage{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r HeroImagesRepository) StoreHeroImage(ctx context.Context, h domain.HeroImage) error {
	const op = "HeroImagesRepository.StoreHeroImage"

	d := storage.HeroImageFromDomain(h)
	if err := r.coll.replace(ctx, bson.M{"id": h.ID}, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r HeroImagesRepository) DeleteHeroImage(ctx context.Context, id string) error {
	const op = "HeroImagesRepository.DeleteHeroImage"

	if err := r.coll.deleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
