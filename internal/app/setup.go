// Package app contains the application setup for the storefront service.
package app

import (
	"log/slog"
	"net/http"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"

	"github.com/golshop/storefront/internal/auth"
	"github.com/golshop/storefront/internal/cart"
	"github.com/golshop/storefront/internal/catalog"
	"github.com/golshop/storefront/internal/checkout"
	"github.com/golshop/storefront/internal/config"
	"github.com/golshop/storefront/internal/order"
	"github.com/golshop/storefront/internal/transport/rest"
	"github.com/golshop/storefront/pkg/messaging"
	"github.com/golshop/storefront/pkg/server"
	"github.com/golshop/storefront/pkg/web"
)

type Dependencies struct {
	Catalog    catalog.Service
	Carts      *cart.Manager
	Checkout   *checkout.Service
	Orders     order.OrderService
	Users      auth.Provider
	Verifier   auth.TokenVerifier
	CookieName string
	Logger     *slog.Logger
}

// SetupDependencies wires the domain services over the shared Firestore and
// Firebase clients. publisher may be nil when eventing is disabled.
func SetupDependencies(fsClient *firestore.Client, authClient *fbauth.Client, publisher messaging.Publisher, cfg *config.Config, logger *slog.Logger) *Dependencies {
	var fallback catalog.Store
	if cfg.Catalog.FallbackToMock {
		fallback = catalog.NewSeededStore(catalog.MockListing())
	}
	catalogSvc := catalog.NewService(catalog.NewFirestoreStore(fsClient, cfg.Catalog.Collection), fallback, logger)

	carts := cart.NewManager(func(sessionID string) cart.Store {
		return cart.NewFirestoreStore(fsClient, cfg.Cart.Collection, sessionID, cfg.Cart.TTL)
	}, logger)

	orderSvc := order.NewService(order.NewFirestoreStore(fsClient, cfg.Order.Collection), publisher, logger)

	return &Dependencies{
		Catalog:    catalogSvc,
		Carts:      carts,
		Checkout:   checkout.NewService(orderSvc, logger),
		Orders:     orderSvc,
		Users:      auth.NewFirebaseProvider(authClient, cfg.Firebase.PasswordResetURL),
		Verifier:   authClient,
		CookieName: cfg.Cart.CookieName,
		Logger:     logger,
	}
}

// SetupHttpHandler initializes the HTTP routes and middleware for the
// storefront application. Used by tests to exercise the full HTTP surface.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	mux.Use(web.SessionCookie(deps.CookieName, cfg.Cart.TTL))
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.Catalog, deps.Carts, deps.Checkout, deps.Orders, deps.Users, deps.Verifier, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the storefront application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
