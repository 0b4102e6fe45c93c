// Package rest provides the HTTP handlers for the storefront API.
package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/golshop/storefront/internal/auth"
	"github.com/golshop/storefront/internal/cart"
	"github.com/golshop/storefront/internal/catalog"
	"github.com/golshop/storefront/internal/checkout"
	"github.com/golshop/storefront/internal/order"
	"github.com/golshop/storefront/pkg/web"
)

type Handler struct {
	catalog  catalog.Service
	carts    *cart.Manager
	checkout *checkout.Service
	orders   order.OrderService
	users    auth.Provider
	verifier auth.TokenVerifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates the storefront API handler with the provided services.
func NewHandler(
	catalogSvc catalog.Service,
	carts *cart.Manager,
	checkoutSvc *checkout.Service,
	orders order.OrderService,
	users auth.Provider,
	verifier auth.TokenVerifier,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		carts:    carts,
		checkout: checkoutSvc,
		orders:   orders,
		users:    users,
		verifier: verifier,
		validate: validator.New(),

		logger: logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Route("/items/{id}", func(r chi.Router) {
				r.Put("/", h.UpdateCartItem)
				r.Delete("/", h.RemoveCartItem)
			})
		})

		r.With(auth.OptionalAuth(h.verifier)).Post("/checkout", h.Checkout)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(h.verifier))
			r.Get("/orders", h.FindOrdersByUser)
			r.Get("/orders/{id}", h.FindOrderByID)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/password-reset", h.PasswordReset)
			r.With(auth.RequireAuth(h.verifier)).Post("/password", h.ChangePassword)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAuth(h.verifier))
			r.Post("/products", h.AdminCreateProduct)
			r.Put("/products/{id}", h.AdminUpdateProduct)
			r.Delete("/products/{id}", h.AdminDeleteProduct)
			r.Get("/orders", h.AdminListOrders)
			r.Put("/orders/{id}/status", h.AdminUpdateOrderStatus)
			r.Get("/users", h.AdminListUsers)
			r.Delete("/users/{id}", h.AdminDeleteUser)
		})
	})
	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}

// parseUUID validates an ID carried in a request body.
func parseUUID(w http.ResponseWriter, logger *slog.Logger, value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		web.RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid ID: %s", value))
		return uuid.UUID{}, false
	}
	return id, true
}
