package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

// ListCategories returns the newest categories first.
func (s Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Service.ListCategories"

	cs, err := s.storages.Categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slices.SortStableFunc(cs, func(a, b domain.Category) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return cs, nil
}

func (s Service) CreateCategory(
	ctx context.Context, name string,
) (domain.Category, error) {
	const op = "Service.CreateCategory"

	name, err := categoryName(name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.ensureCategoryNameFree(ctx, name, ""); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	c := domain.Category{
		ID:        s.newID(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storages.Categories.StoreCategory(ctx, c); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) RenameCategory(
	ctx context.Context, id, name string,
) (domain.Category, error) {
	const op = "Service.RenameCategory"

	name, err := categoryName(name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storages.Categories.ReadCategory(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ensureCategoryNameFree(ctx, name, id); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	c.Name = name
	c.UpdatedAt = s.now().UTC()
	if err := s.storages.Categories.StoreCategory(ctx, c); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// DeactivateCategory is a soft delete.
func (s Service) DeactivateCategory(ctx context.Context, id string) error {
	const op = "Service.DeactivateCategory"

	c, err := s.storages.Categories.ReadCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.IsActive = false
	c.UpdatedAt = s.now().UTC()
	if err := s.storages.Categories.StoreCategory(ctx, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) ToggleCategory(
	ctx context.Context, id string,
) (domain.Category, error) {
	const op = "Service.ToggleCategory"

	c, err := s.storages.Categories.ReadCategory(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	c.IsActive = !c.IsActive
	c.UpdatedAt = s.now().UTC()
	if err := s.storages.Categories.StoreCategory(ctx, c); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ensureCategoryNameFree matches names case-insensitively and ignores the
// category with exceptID.
func (s Service) ensureCategoryNameFree(
	ctx context.Context, name, exceptID string,
) error {
	found, err := s.storages.Categories.FindCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if found.ID == exceptID {
		return nil
	}
	return fmt.Errorf("category %q: %w", name, domain.ErrAlreadyExists)
}

func categoryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.ErrInvalidName
	}
	return name, nil
}
