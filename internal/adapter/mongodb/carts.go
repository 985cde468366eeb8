package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	_ port.CartsStorage     = (*CartsRepository)(nil)
	_ port.WishlistsStorage = (*WishlistsRepository)(nil)
)

type CartsRepository struct {
	coll collection[storage.Cart]
}

func NewCartsRepository(db DB) CartsRepository {
	return CartsRepository{newCollection[storage.Cart](db, cartsCollection)}
}

func (r CartsRepository) ReadCart(ctx context.Context, userID string) (domain.Cart, error) {
	const op = "CartsRepository.ReadCart"

	d, err := r.coll.findOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r CartsRepository) StoreCart(ctx context.Context, c domain.Cart) error {
	const op = "CartsRepository.StoreCart"

	d := storage.CartFromDomain(c)
	if err := r.coll.replace(ctx, bson.M{"userId": c.UserID}, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type WishlistsRepository struct {
	coll collection[storage.Wishlist]
}

func NewWishlistsRepository(db DB) WishlistsRepository {
	return WishlistsRepository{newCollection[storage.Wishlist](db, wishlistsCollection)}
}

func (r WishlistsRepository) ReadWishlist(
	ctx context.Context, userID string,
) (domain.Wishlist, error) {
	const op = "WishlistsRepository.ReadWishlist"

	d, err := r.coll.findOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r WishlistsRepository) StoreWishlist(ctx context.Context, w domain.Wishlist) error {
	const op = "WishlistsRepository.StoreWishlist"

	d := storage.WishlistFromDomain(w)
	if err := r.coll.replace(ctx, bson.M{"userId": w.UserID}, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
