package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Register creates a customer, or an admin awaiting approval. The
// configured bootstrap mobile gets an approved admin right away.
func (s Service) Register(
	ctx context.Context, r domain.Registration,
) (domain.User, error) {
	const op = "Service.Register"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.storages.Users.FindUserByMobile(ctx, r.Mobile)
	switch {
	case err == nil:
		return domain.User{}, fmt.Errorf("%s: user: %w", op, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	u := domain.User{
		ID:           s.newID(),
		Name:         r.Name,
		Mobile:       r.Mobile,
		PasswordHash: hash,
		IsAdmin:      r.IsAdmin,
		IsApproved:   !r.IsAdmin || s.isBootstrapAdmin(r.Mobile),
	}

	if err := s.storages.Users.StoreUser(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", "userID", u.ID, "admin", u.IsAdmin, "approved", u.IsApproved)
	return u, nil
}

// Login checks credentials. An admin still waiting for approval gets a
// customer session.
func (s Service) Login(
	ctx context.Context, mobile, password string,
) (domain.Session, error) {
	const op = "Service.Login"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.storages.Users.FindUserByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(domain.Principal{
		UserID: u.ID,
		Admin:  u.HasAdminRights(),
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Session{User: u, Token: token}, nil
}

func (s Service) Authenticate(
	ctx context.Context, token string,
) (domain.Principal, error) {
	const op = "Service.Authenticate"

	if err := ctx.Err(); err != nil {
		return domain.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidCredentials, err)
	}
	return p, nil
}

func (s Service) PendingAdmins(ctx context.Context) ([]domain.User, error) {
	const op = "Service.PendingAdmins"

	us, err := s.storages.Users.ListPendingAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return us, nil
}

func (s Service) ApproveAdmin(ctx context.Context, id string) error {
	const op = "Service.ApproveAdmin"

	u, err := s.pendingAdmin(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	u.IsApproved = true
	if err := s.storages.Users.StoreUser(ctx, u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RejectAdmin removes the pending account. Customers and approved admins
// are not pending requests and are reported as not found.
func (s Service) RejectAdmin(ctx context.Context, id string) error {
	const op = "Service.RejectAdmin"

	if _, err := s.pendingAdmin(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storages.Users.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) pendingAdmin(ctx context.Context, id string) (domain.User, error) {
	u, err := s.storages.Users.ReadUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if !u.IsAdmin || u.IsApproved {
		return domain.User{}, fmt.Errorf("pending admin %q: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (s Service) isBootstrapAdmin(mobile string) bool {
	return s.cfg.BootstrapAdminMobile != "" && mobile == s.cfg.BootstrapAdminMobile
}
