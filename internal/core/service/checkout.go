package service

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
)

func (s Service) DirectOrder(
	ctx context.Context, r domain.OrderRequest,
) (domain.OrderLink, error) {
	const op = "Service.DirectOrder"

	if err := ctx.Err(); err != nil {
		return domain.OrderLink{}, fmt.Errorf("%s: %w", op, err)
	}

	if r.Quantity < 1 {
		return domain.OrderLink{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidQuantity)
	}

	p, err := s.storages.Products.ReadProduct(ctx, r.ProductID)
	if err != nil {
		return domain.OrderLink{}, fmt.Errorf("%s: %w", op, err)
	}

	if r.Quantity > p.Variations.StockOf(r.Size, r.Color) {
		return domain.OrderLink{}, fmt.Errorf("%s: %w", op, domain.ErrInsufficientStock)
	}

	msg := domain.DirectOrderMessage(s.cfg.ShopURL, domain.OrderLine{
		Product:  p,
		Color:    r.Color,
		Size:     r.Size,
		Quantity: r.Quantity,
	})
	return domain.NewOrderLink(s.cfg.WhatsAppNumber, msg), nil
}

func (s Service) CartOrder(ctx context.Context, userID string) (domain.OrderLink, error) {
	const op = "Service.CartOrder"

	sum, err := s.Cart(ctx, userID)
	if err != nil {
		return domain.OrderLink{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(sum.Items) == 0 {
		return domain.OrderLink{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	ls := make([]domain.OrderLine, len(sum.Items))
	for i, it := range sum.Items {
		if it.Quantity > it.Product.Variations.StockOf(it.Size, it.Color) {
			return domain.OrderLink{}, fmt.Errorf(
				"%s: product %q: %w", op, it.Product.Name, domain.ErrInsufficientStock,
			)
		}
		ls[i] = domain.OrderLine{
			Product:  it.Product,
			Color:    it.Color,
			Size:     it.Size,
			Quantity: it.Quantity,
		}
	}

	msg := domain.CartOrderMessage(s.cfg.ShopURL, ls)
	return domain.NewOrderLink(s.cfg.WhatsAppNumber, msg), nil
}
