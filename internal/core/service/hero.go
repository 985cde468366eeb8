package service

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
)

func (s Service) ListHeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	const op = "Service.ListHeroImages"

	hs, err := s.storages.HeroImages.ListHeroImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return hs, nil
}

func (s Service) CreateHeroImage(
	ctx context.Context, h domain.HeroImage,
) (domain.HeroImage, error) {
	const op = "Service.CreateHeroImage"

	h.ID = s.newID()
	if err := s.storages.HeroImages.StoreHeroImage(ctx, h); err != nil {
		return domain.HeroImage{}, fmt.Errorf("%s: %w", op, err)
	}
	return h, nil
}

func (s Service) UpdateHeroImage(
	ctx context.Context, id string, h domain.HeroImage,
) (domain.HeroImage, error) {
	const op = "Service.UpdateHeroImage"

	if _, err := s.storages.HeroImages.ReadHeroImage(ctx, id); err != nil {
		return domain.HeroImage{}, fmt.Errorf("%s: %w", op, err)
	}

	h.ID = id
	if err := s.storages.HeroImages.StoreHeroImage(ctx, h); err != nil {
		return domain.HeroImage{}, fmt.Errorf("%s: %w", op, err)
	}
	return h, nil
}

func (s Service) DeleteHeroImage(ctx context.Context, id string) error {
	const op = "Service.DeleteHeroImage"

	if err := s.storages.HeroImages.DeleteHeroImage(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
