package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
)

func (s Service) Cart(ctx context.Context, userID string) (domain.CartSummary, error) {
	const op = "Service.Cart"

	c, err := s.readCart(ctx, userID)
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	sum, err := s.summarize(ctx, c)
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}

// AddToCart merges the line into the cart. The merged quantity is bounded
// by the stock of the line's size and color.
func (s Service) AddToCart(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error) {
	const op = "Service.AddToCart"
	return s.mutateCart(ctx, op, userID, func(c *domain.Cart) error {
		stock, err := s.lineStock(ctx, l)
		if err != nil {
			return err
		}
		return c.Add(l, stock)
	})
}

func (s Service) UpdateCartLine(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error) {
	const op = "Service.UpdateCartLine"
	return s.mutateCart(ctx, op, userID, func(c *domain.Cart) error {
		var stock int
		if l.Quantity > 0 {
			var err error
			if stock, err = s.lineStock(ctx, l); err != nil {
				return err
			}
		}
		return c.SetQuantity(l, stock)
	})
}

func (s Service) RemoveFromCart(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error) {
	const op = "Service.RemoveFromCart"
	return s.mutateCart(ctx, op, userID, func(c *domain.Cart) error {
		c.Remove(l)
		return nil
	})
}

func (s Service) ClearCart(ctx context.Context, userID string) error {
	const op = "Service.ClearCart"

	c := domain.Cart{UserID: userID}
	if err := s.storages.Carts.StoreCart(ctx, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) mutateCart(
	ctx context.Context,
	op string,
	userID string,
	mutate func(*domain.Cart) error,
) (domain.CartSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.readCart(ctx, userID)
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := mutate(&c); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storages.Carts.StoreCart(ctx, c); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	sum, err := s.summarize(ctx, c)
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}

func (s Service) readCart(ctx context.Context, userID string) (domain.Cart, error) {
	c, err := s.storages.Carts.ReadCart(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Cart{UserID: userID}, nil
		}
		return domain.Cart{}, err
	}
	return c, nil
}

func (s Service) lineStock(ctx context.Context, l domain.CartLine) (int, error) {
	p, err := s.storages.Products.ReadProduct(ctx, l.ProductID)
	if err != nil {
		return 0, err
	}
	return p.Variations.StockOf(l.Size, l.Color), nil
}

// summarize resolves lines against current products. Lines of deleted
// products are skipped.
func (s Service) summarize(ctx context.Context, c domain.Cart) (domain.CartSummary, error) {
	const op = "Service.summarize"
	log := slog.With("op", op)

	items := make([]domain.CartItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		p, err := s.storages.Products.ReadProduct(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				log.Debug("skip missing product", "productID", l.ProductID)
				continue
			}
			return domain.CartSummary{}, err
		}
		items = append(items, domain.CartItem{CartLine: l, Product: p})
	}
	return domain.Summarize(items), nil
}
