package app

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Cyndie1416/RetailPOS/internal/config"
	httpdelivery "github.com/Cyndie1416/RetailPOS/internal/delivery/http"
	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/logger"
	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/snapshot"
)

type App struct {
	f   *fiber.App
	cfg config.Config
}

func New() (*App, error) {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("app")

	hub := event.NewHub()

	stores := &httpdelivery.Stores{
		Catalog:   memory.NewCatalogStore(hub),
		Ledger:    memory.NewLedgerStore(hub),
		Sales:     memory.NewSaleStore(hub),
		Suppliers: memory.NewSupplierStore(hub),
		Orders:    memory.NewOrderStore(hub),
		Users:     memory.NewUserStore(hub),
		Settings:  memory.NewSettingsStore(hub),
	}
	stores.Snapshot = &snapshot.Service{
		Catalog:   stores.Catalog,
		Ledger:    stores.Ledger,
		Sales:     stores.Sales,
		Suppliers: stores.Suppliers,
		Orders:    stores.Orders,
		Users:     stores.Users,
		Settings:  stores.Settings,
	}

	files := snapshot.NewFileStore(cfg.SnapshotPath)
	if snap, err := files.Load(); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return nil, err
		}
		log.Info().Str("path", cfg.SnapshotPath).Msg("no snapshot found, starting empty")
	} else {
		if err := stores.Snapshot.Import(context.Background(), snap); err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SnapshotPath).
			Int("products", len(snap.Products)).
			Int("customers", len(snap.Customers)).
			Int("sales", len(snap.Sales)).
			Msg("snapshot loaded")
	}

	// The stores announce mutations; persistence stays an application-layer
	// concern, so the autosave subscription lives here and not in the core.
	if cfg.Autosave {
		hub.Subscribe(func(e event.Event) {
			snap, err := stores.Snapshot.Export(context.Background())
			if err != nil {
				log.Error().Err(err).Str("event", e.Type()).Msg("autosave export failed")
				return
			}
			if err := files.Save(snap); err != nil {
				log.Error().Err(err).Str("event", e.Type()).Msg("autosave failed")
			}
		})
	}

	f := fiber.New(fiber.Config{
		AppName: "retailpos-backend",
	})

	f.Use(recover.New())
	f.Use(fiberlogger.New())

	httpdelivery.RegisterRoutes(f, cfg, stores)

	return &App{f: f, cfg: cfg}, nil
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.cfg.Port)
}
