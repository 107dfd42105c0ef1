// Command storefront runs the cart monitor: it wires the configured
// persistence backend and signal transport, then logs cart totals on
// every change, local or from another context, until interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbagha/storefront/internal/app"
	"github.com/kbagha/storefront/internal/cart"
	"github.com/kbagha/storefront/internal/config"
	"github.com/kbagha/storefront/pkg/configloader"
	"github.com/kbagha/storefront/pkg/logger"
	"github.com/kbagha/storefront/pkg/pubsub"
	"golang.org/x/sync/errgroup"
)

const appName = "storefront"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

func run(ctx context.Context) error {
	cfg, err := configloader.Load[*config.Config](appName)
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg.Log.Level, appName)
	if err != nil {
		return err
	}
	lg.Info("configuration loaded", "config", cfg.String())

	deps, cleanup, err := app.SetupDependencies(cfg, lg)
	if err != nil {
		return err
	}
	defer cleanup()

	unsubscribe := deps.Broadcast.Subscribe(func(snap cart.Snapshot) {
		totals := snap.Totals()
		lg.Info("cart changed",
			"lines", len(snap.Items),
			"items", totals.ItemCount,
			"subtotal", totals.Subtotal,
		)
	})
	defer unsubscribe()

	slot := cfg.Cart.Slot
	if slot == "" {
		slot = cart.DefaultSlot
	}
	if deps.Signals != nil {
		cancel, err := deps.Signals.Listen(ctx, slot, func(_ pubsub.Signal) {
			deps.Cart.Reload(ctx)
		})
		if err != nil {
			return err
		}
		defer cancel()
	}

	snap := deps.Cart.Load(ctx)
	lg.Info("cart monitor started", "lines", len(snap.Items))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		lg.Info("shutting down", "timeout", cfg.Shutdown.Timeout)
		return nil
	})
	return g.Wait()
}
