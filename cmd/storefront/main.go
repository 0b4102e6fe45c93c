// Package main runs the storefront HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"golang.org/x/sync/errgroup"

	"github.com/golshop/storefront/internal/app"
	"github.com/golshop/storefront/internal/config"
	"github.com/golshop/storefront/pkg/bootstrap"
	"github.com/golshop/storefront/pkg/config/configloader"
	"github.com/golshop/storefront/pkg/messaging"
	natsinfra "github.com/golshop/storefront/pkg/nats"
)

const serviceName = "storefront"

// cartSweepInterval is how often idle cart engines are evicted from memory.
const cartSweepInterval = 5 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run initializes the application, connects the backing services and starts
// the HTTP and pprof servers.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	fsClient, err := bootstrap.NewFirestoreClient(ctx, cfg.Firestore)
	if err != nil {
		return fmt.Errorf("failed to create firestore client: %w", err)
	}
	defer func() {
		if err := fsClient.Close(); err != nil {
			logger.Error("Failed to close firestore client", slog.String("error", err.Error()))
		}
	}()
	logger.Info("Successfully connected to Firestore")

	authClient, err := bootstrap.NewFirebaseAuthClient(ctx, cfg.Firebase)
	if err != nil {
		return fmt.Errorf("failed to create firebase auth client: %w", err)
	}
	logger.Info("Firebase auth client initialized")

	var publisher messaging.Publisher
	if cfg.Nats.Enabled {
		nc, err := natsinfra.NewClient(cfg.Nats.Url, cfg.Nats.Timeout)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()
		js, err := natsinfra.NewJetStreamContext(nc)
		if err != nil {
			return fmt.Errorf("failed to create JetStream context: %w", err)
		}
		publisher = natsinfra.NewNatsPublisher(js)
		logger.Info("Successfully connected to NATS", slog.String("url", cfg.Nats.Url))
	}

	deps := app.SetupDependencies(fsClient, authClient, publisher, cfg, logger)
	httpServer := app.SetupHttpServer(deps, cfg)
	pprofServer := &http.Server{
		Addr: cfg.PProf.Addr,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Evict cart engines idle past the cart TTL so the per-session cache
	// tracks the lifetime of the durable documents it fronts.
	g.Go(func() error {
		deps.Carts.Sweep(gCtx, cartSweepInterval, cfg.Cart.TTL)
		return nil
	})

	// Start the HTTP server
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	// Start the pprof server if enabled
	if cfg.PProf.Enabled {
		g.Go(func() error {
			logger.Info("Pprof server listening", slog.String("addr", pprofServer.Addr))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server failed: %w", err)
			}
			return nil
		})
		// gracefully shutdown pprof server on context cancellation
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down pprof server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return pprofServer.Shutdown(shutdownCtx)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
