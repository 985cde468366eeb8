package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/auth"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/mongodb"
	"github.com/niksmo/storefront/internal/adapter/postgresql"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	storages   service.Storages
	closers    []func(context.Context)
	events     port.ProductEventsProducer
	service    service.Service
	httpServer httphandler.Server
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorages()
	app.initProducer()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorages() {
	switch app.cfg.Storage.Driver {
	case config.DriverPostgres:
		app.initPostgres()
	default:
		app.initMongo()
	}
}

func (app *App) initMongo() {
	const op = "App.initMongo"

	db, err := mongodb.Connect(
		app.ctx, app.cfg.Storage.Mongo.URI, app.cfg.Storage.Mongo.Database,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.closers = append(app.closers, db.Close)

	if err := db.EnsureIndexes(app.ctx); err != nil {
		app.fallDown(op, err)
	}

	app.storages = service.Storages{
		Products:   mongodb.NewProductsRepository(db),
		Categories: mongodb.NewCategoriesRepository(db),
		HeroImages: mongodb.NewHeroImagesRepository(db),
		Users:      mongodb.NewUsersRepository(db),
		Carts:      mongodb.NewCartsRepository(db),
		Wishlists:  mongodb.NewWishlistsRepository(db),
	}
}

func (app *App) initPostgres() {
	const op = "App.initPostgres"

	db, err := postgresql.NewSQLDB(app.ctx, app.cfg.Storage.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.closers = append(app.closers, func(context.Context) { db.Close() })

	app.storages = service.Storages{
		Products:   postgresql.NewProductsRepository(db),
		Categories: postgresql.NewCategoriesRepository(db),
		HeroImages: postgresql.NewHeroImagesRepository(db),
		Users:      postgresql.NewUsersRepository(db),
		Carts:      postgresql.NewCartsRepository(db),
		Wishlists:  postgresql.NewWishlistsRepository(db),
	}
}

func (app *App) initProducer() {
	const op = "App.initProducer"

	broker := app.cfg.Broker
	if !broker.Enabled {
		slog.Info("broker is disabled, product events are not published")
		return
	}

	identifier, err := schema.NewRegistryIdentifier(broker.SchemaRegistryURLs)
	if err != nil {
		app.fallDown(op, err)
	}

	topic := broker.Topics.ProductEvents
	serde, err := schema.NewSerdeProductEventV1(
		app.ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(identifier),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var tlsConfig *tls.Config
	if broker.TLS.Enabled() {
		tlsConfig, err = adapter.MakeTLSConfig(
			broker.TLS.CA, broker.TLS.Cert, broker.TLS.Key,
		)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	producer, err := kafka.NewProductEventsProducer(
		kafka.ProducerClientOpt(app.ctx, broker.SeedBrokers, topic, tlsConfig),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.events = producer
	app.closers = append(app.closers, func(context.Context) { producer.Close() })
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	tokens, err := auth.NewJWTIssuer(app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL)
	if err != nil {
		app.fallDown(op, err)
	}

	app.service = service.New(
		app.storages,
		app.events,
		auth.NewBcryptHasher(0),
		tokens,
		service.Config{
			LowStockThreshold:    app.cfg.Inventory.LowStockThreshold,
			BootstrapAdminMobile: app.cfg.Auth.BootstrapAdminMobile,
			WhatsAppNumber:       app.cfg.Checkout.WhatsAppNumber,
			ShopURL:              app.cfg.Checkout.ShopBaseURL,
		},
	)
}

func (app *App) initInboundAdapters() {
	s := app.service
	mux := http.NewServeMux()
	guard := httphandler.NewGuard(s)

	httphandler.RegisterProducts(mux, guard, s)
	httphandler.RegisterCatalog(mux, guard, s, s)
	httphandler.RegisterUsers(mux, guard, s, s)
	httphandler.RegisterShopping(mux, guard, s, s, s)

	handler := httphandler.CORS(httphandler.LogRequests(httphandler.AllowJSON(mux)))
	app.httpServer = httphandler.NewServer(app.cfg.HTTPServerAddr, handler)
}

// Run binds the listener synchronously so a busy port fails fast, then
// serves in the background.
func (app *App) Run(stopFn context.CancelFunc) {
	const op = "App.Run"

	ln, err := app.httpServer.Listen()
	if err != nil {
		app.fallDown(op, err)
	}
	go app.httpServer.Serve(ln, stopFn)

	slog.Info("application is running")
}

// Close stops the http server first, then releases outbound adapters in
// reverse order of creation.
func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Shutdown(ctx)
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i](ctx)
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
