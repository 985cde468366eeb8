package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
)

func (s Service) Wishlist(ctx context.Context, userID string) ([]domain.Product, error) {
	const op = "Service.Wishlist"

	w, err := s.readWishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(w.ProductIDs))
	for _, id := range w.ProductIDs {
		p, err := s.storages.Products.ReadProduct(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (s Service) AddToWishlist(ctx context.Context, userID, productID string) error {
	const op = "Service.AddToWishlist"

	if _, err := s.storages.Products.ReadProduct(ctx, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w, err := s.readWishlist(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if w.Contains(productID) {
		return nil
	}

	w.Add(productID)
	if err := s.storages.Wishlists.StoreWishlist(ctx, w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	const op = "Service.RemoveFromWishlist"

	w, err := s.readWishlist(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !w.Contains(productID) {
		return nil
	}

	w.Remove(productID)
	if err := s.storages.Wishlists.StoreWishlist(ctx, w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) ClearWishlist(ctx context.Context, userID string) error {
	const op = "Service.ClearWishlist"

	w := domain.Wishlist{UserID: userID}
	if err := s.storages.Wishlists.StoreWishlist(ctx, w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) readWishlist(ctx context.Context, userID string) (domain.Wishlist, error) {
	w, err := s.storages.Wishlists.ReadWishlist(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Wishlist{UserID: userID}, nil
		}
		return domain.Wishlist{}, err
	}
	return w, nil
}
