// Package app contains the application setup for the storefront core.
package app

import (
	"fmt"
	"log/slog"

	"github.com/kbagha/storefront/internal/cart"
	"github.com/kbagha/storefront/internal/config"
	"github.com/kbagha/storefront/pkg/kvstore"
	natsbus "github.com/kbagha/storefront/pkg/nats"
	"github.com/kbagha/storefront/pkg/pubsub"
	"github.com/redis/go-redis/v9"
)

// Dependencies bundles the wired storefront core.
type Dependencies struct {
	Cart      *cart.Store
	Broadcast *cart.Broadcaster
	Backend   kvstore.Store
	Signals   pubsub.Subscriber // nil when cross-context signaling is disabled
	Logger    *slog.Logger
}

// SetupDependencies builds the persistence backend and signal transport
// selected by the configuration and wires the cart store on top of
// them. The returned cleanup closes owned connections.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, func(), error) {
	cleanup := func() {}

	backend, backendCleanup, err := setupBackend(&cfg.Storage)
	if err != nil {
		return nil, cleanup, err
	}

	var notifier pubsub.Notifier
	var signals pubsub.Subscriber
	natsCleanup := func() {}
	if cfg.Nats.Enabled {
		nc, err := natsbus.NewClient(cfg.Nats.URL, cfg.Nats.Timeout)
		if err != nil {
			backendCleanup()
			return nil, cleanup, err
		}
		bus := natsbus.NewSignalBus(nc)
		notifier = bus
		signals = bus
		natsCleanup = nc.Close
	}

	bc := cart.NewBroadcaster()
	store := cart.NewStore(backend, bc, notifier, cfg.Cart.Slot, logger)

	cleanup = func() {
		natsCleanup()
		backendCleanup()
	}
	return &Dependencies{
		Cart:      store,
		Broadcast: bc,
		Backend:   backend,
		Signals:   signals,
		Logger:    logger,
	}, cleanup, nil
}

func setupBackend(cfg *config.StorageConfig) (kvstore.Store, func(), error) {
	switch cfg.Backend {
	case "memory":
		return kvstore.NewMemoryStore(), func() {}, nil
	case "file":
		store, err := kvstore.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return kvstore.NewRedisStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
