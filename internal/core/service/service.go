package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var (
	_ port.ProductsReader     = (*Service)(nil)
	_ port.ProductsEditor     = (*Service)(nil)
	_ port.VariationsEditor   = (*Service)(nil)
	_ port.AvailabilityReader = (*Service)(nil)
	_ port.CategoriesManager  = (*Service)(nil)
	_ port.HeroImagesManager  = (*Service)(nil)
	_ port.UsersManager       = (*Service)(nil)
	_ port.CartManager        = (*Service)(nil)
	_ port.WishlistManager    = (*Service)(nil)
	_ port.Checkout           = (*Service)(nil)
	_ port.StatsReader        = (*Service)(nil)
)

const defaultLowStockThreshold = 5

type Storages struct {
	Products   port.ProductsStorage
	Categories port.CategoriesStorage
	HeroImages port.HeroImagesStorage
	Users      port.UsersStorage
	Carts      port.CartsStorage
	Wishlists  port.WishlistsStorage
}

type Config struct {
	LowStockThreshold    int
	BootstrapAdminMobile string
	WhatsAppNumber       string
	ShopURL              string
}

type Service struct {
	storages Storages
	events   port.ProductEventsProducer
	hasher   port.PasswordHasher
	tokens   port.TokenIssuer
	cfg      Config
	now      func() time.Time
}

func New(
	storages Storages,
	events port.ProductEventsProducer,
	hasher port.PasswordHasher,
	tokens port.TokenIssuer,
	cfg Config,
) Service {
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = defaultLowStockThreshold
	}
	if events == nil {
		events = nopEvents{}
	}
	return Service{
		storages: storages,
		events:   events,
		hasher:   hasher,
		tokens:   tokens,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s Service) newID() string {
	return uuid.NewString()
}

// publish reports catalog changes. Delivery failures are only logged.
func (s Service) publish(
	ctx context.Context, t domain.ProductEventType, p domain.Product,
) {
	const op = "Service.publish"
	log := slog.With("op", op)

	evt := domain.ProductEvent{Type: t, Product: p, OccurredAt: s.now()}
	if err := s.events.ProduceProductEvent(ctx, evt); err != nil {
		log.Warn(
			"failed to publish product event",
			"productID", p.ID, "type", t, "err", err,
		)
	}
}

type nopEvents struct{}

func (nopEvents) ProduceProductEvent(context.Context, domain.ProductEvent) error {
	return nil
}
