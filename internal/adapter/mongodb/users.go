package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
)

var _ port.UsersStorage = (*UsersRepository)(nil)

type UsersRepository struct {
	coll collection[storage.User]
}

func NewUsersRepository(db DB) UsersRepository {
	return UsersRepository{newCollection[storage.User](db, usersCollection)}
}

func (r UsersRepository) ReadUser(ctx context.Context, id string) (domain.User, error) {
	const op = "UsersRepository.ReadUser"

	d, err := r.coll.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r UsersRepository) FindUserByMobile(
	ctx context.Context, mobile string,
) (domain.User, error) {
	const op = "UsersRepository.FindUserByMobile"

	d, err := r.coll.findOne(ctx, bson.M{"mobile": mobile})
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.ToDomain(), nil
}

func (r UsersRepository) ListPendingAdmins(ctx context.Context) ([]domain.User, error) {
	const op = "UsersRepository.ListPendingAdmins"

	ds, err := r.coll.find(ctx, bson.M{"isAdmin": true, "isApproved": false})
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
	if err := r.coll.replace(ctx, bson.M{"id": u.ID}, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r UsersRepository) DeleteUser(ctx context.Context, id string) error {
	const op = "UsersRepository.DeleteUser"

	if err := r.coll.deleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
