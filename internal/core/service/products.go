package service

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

func (s Service) ListProducts(
	ctx context.Context, f domain.ProductFilter,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storages.Products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f.Apply(ps), nil
}

func (s Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.FeaturedProducts"

	ps, err := s.storages.Products.FindProducts(ctx, true, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) NewArrivals(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.NewArrivals"

	ps, err := s.storages.Products.FindProducts(ctx, false, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	const op = "Service.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storages.Products.ReadProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p.ID = s.newID()
	if err := s.storages.Products.StoreProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.ProductCreated, p)
	return p, nil
}

// UpdateProduct replaces the whole product document. Concurrent editors
// overwrite each other, the last write wins.
func (s Service) UpdateProduct(
	ctx context.Context, id string, p domain.Product,
) (domain.Product, error) {
	const op = "Service.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storages.Products.ReadProduct(ctx, id); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p.ID = id
	if err := s.storages.Products.StoreProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.ProductUpdated, p)
	return p, nil
}

func (s Service) DeleteProduct(ctx context.Context, id string) error {
	const op = "Service.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storages.Products.ReadProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storages.Products.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.ProductDeleted, p)
	return nil
}

func (s Service) AddVariation(
	ctx context.Context, productID string, v domain.Variation,
) (domain.Product, error) {
	const op = "Service.AddVariation"
	return s.mutateVariations(ctx, op, productID, func(vs *domain.VariationSet) error {
		return vs.Add(v.Size, v.Color, v.Stock)
	})
}

func (s Service) UpdateVariation(
	ctx context.Context, productID string, v domain.Variation,
) (domain.Product, error) {
	const op = "Service.UpdateVariation"
	return s.mutateVariations(ctx, op, productID, func(vs *domain.VariationSet) error {
		return vs.Update(v.Size, v.Color, v.Stock)
	})
}

func (s Service) RemoveVariation(
	ctx context.Context, productID, size, color string,
) (domain.Product, error) {
	const op = "Service.RemoveVariation"
	return s.mutateVariations(ctx, op, productID, func(vs *domain.VariationSet) error {
		vs.Remove(size, color)
		return nil
	})
}

func (s Service) mutateVariations(
	ctx context.Context,
	op string,
	productID string,
	mutate func(*domain.VariationSet) error,
) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storages.Products.ReadProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	vs := p.Variations.Clone()
	if err := mutate(&vs); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	p.Variations = vs

	if err := s.storages.Products.StoreProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.ProductUpdated, p)
	return p, nil
}

func (s Service) Availability(
	ctx context.Context, productID string, q port.AvailabilityQuery,
) (port.Availability, error) {
	const op = "Service.Availability"

	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return port.Availability{}, fmt.Errorf("%s: %w", op, err)
	}

	sel := domain.NewSelection(p.Variations)
	if q.Color != "" {
		if err := sel.SelectColor(q.Color); err != nil {
			return port.Availability{}, fmt.Errorf("%s: color %q: %w", op, q.Color, err)
		}
	}
	if q.Size != "" {
		if err := sel.SelectSize(q.Size); err != nil {
			return port.Availability{}, fmt.Errorf("%s: size %q: %w", op, q.Size, err)
		}
	}
	if q.Quantity != 0 {
		sel.SetQuantity(q.Quantity)
	}

	return port.Availability{
		Product:    p,
		Selection:  sel,
		StockLevel: domain.StockLevelOf(sel.Stock(), s.cfg.LowStockThreshold),
	}, nil
}

func (s Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	const op = "Service.DashboardStats"

	if err := ctx.Err(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storages.Products.ListProducts(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.storages.Categories.ListCategories(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	pending, err := s.storages.Users.ListPendingAdmins(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := domain.DashboardStats{
		Products:         len(ps),
		PendingApprovals: len(pending),
	}
	for _, c := range cs {
		if c.IsActive {
			stats.ActiveCategories++
		}
	}
	for _, p := range ps {
		switch domain.StockLevelOf(p.TotalStock(), s.cfg.LowStockThreshold) {
		case domain.OutOfStock:
			stats.OutOfStock++
		case domain.LowStock:
			stats.LowStock++
		}
	}
	return stats, nil
}
