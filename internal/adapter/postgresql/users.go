package postgresql

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var (
	_ port.UsersStorage     = (*UsersRepository)(nil)
	_ port.CartsStorage     = (*CartsRepository)(nil)
	_ port.WishlistsStorage = (*WishlistsRepository)(nil)
)

type UsersRepository struct {
	docs documents[storage.User]
}

func NewUsersRepository(db sqldb) UsersRepository {
	return UsersRepository{documents[storage.User]{db, "users"}}
}

func (r UsersRepository) ReadUser(ctx context.Context, id string) (domain.User, error) {
	const op = "UsersRepository.ReadUser"

	d, err := r.docs.selectOne(ctx, "id = $1", id)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r UsersRepository) FindUserByMobile(
	ctx context.Context, mobile string,
) (domain.User, error) {
	const op = "UsersRepository.FindUserByMobile"

	d, err := r.docs.selectOne(ctx, "mobile = $1", mobile)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r UsersRepository) ListPendingAdmins(ctx context.Context) ([]domain.User, error) {
	const op = "UsersRepository.ListPendingAdmins"

	where := "(doc->>'isAdmin')::boolean AND NOT (doc->>'isApproved')::boolean"
	ds, err := r.docs.selectMany(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	us := make([]domain.User, len(ds))
	for i, d := range ds {
		us[i] = d.ToDomain()
	}
	return us, nil
}

func (r UsersRepository) StoreUser(ctx context.Context, u domain.User) error {
	const op = "UsersRepository.StoreUser"

	d := storage.UserFromDomain(u)
	err := r.docs.upsert(ctx, "id", u.ID, d, []string{"mobile"}, []any{d.Mobile})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r UsersRepository) DeleteUser(ctx context.Context, id string) error {
	const op = "UsersRepository.DeleteUser"

	if err := r.docs.delete(ctx, "id", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type CartsRepository struct {
	docs documents[storage.Cart]
}

func NewCartsRepository(db sqldb) CartsRepository {
	return CartsRepository{documents[storage.Cart]{db, "carts"}}
}

func (r CartsRepository) ReadCart(ctx context.Context, userID string) (domain.Cart, error) {
	const op = "CartsRepository.ReadCart"

	d, err := r.docs.selectOne(ctx, "user_id = $1", userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r CartsRepository) StoreCart(ctx context.Context, c domain.Cart) error {
	const op = "CartsRepository.StoreCart"

	d := storage.CartFromDomain(c)
	if err := r.docs.upsert(ctx, "user_id", c.UserID, d, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type WishlistsRepository struct {
	docs documents[storage.Wishlist]
}

func NewWishlistsRepository(db sqldb) WishlistsRepository {
	return WishlistsRepository{documents[storage.Wishlist]{db, "wishlists"}}
}

func (r WishlistsRepository) ReadWishlist(
	ctx context.Context, userID string,
) (domain.Wishlist, error) {
	const op = "WishlistsRepository.ReadWishlist"

	d, err := r.docs.selectOne(ctx, "user_id = $1", userID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r WishlistsRepository) StoreWishlist(ctx context.Context, w domain.Wishlist) error {
	const op = "WishlistsRepository.StoreWishlist"

	d := storage.WishlistFromDomain(w)
	if err := r.docs.upsert(ctx, "user_id", w.UserID, d, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
