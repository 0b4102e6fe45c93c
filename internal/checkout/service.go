// Package checkout turns a session's cart into a durable order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golshop/storefront/internal/cart"
	"github.com/golshop/storefront/internal/order"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service finalizes checkouts. The cart is cleared only after the order store
// write succeeds; on failure the cart is left untouched so a retry loses
// nothing.
type Service struct {
	orders order.OrderService
	logger *slog.Logger
}

func NewService(orders order.OrderService, logger *slog.Logger) *Service {
	return &Service{
		orders: orders,
		logger: logger.With("component", "checkout"),
	}
}

// Checkout snapshots the engine's cart, appends an order document and clears
// the cart on success. userID is empty for guest checkouts.
func (s *Service) Checkout(ctx context.Context, engine *cart.Engine, userID string, customer order.CustomerDto) (*order.OrderDto, error) {
	items := engine.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	draft := order.OrderCreateDto{
		UserID:   userID,
		Items:    make([]order.OrderItemDto, len(items)),
		Customer: customer,
	}
	for i, it := range items {
		draft.Items[i] = order.OrderItemDto{
			ProductID: it.ID,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
	}

	created, err := s.orders.Create(ctx, draft)
	if err != nil {
		// Cart stays intact so the user can retry from the checkout page.
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	engine.ClearCart(ctx)
	s.logger.InfoContext(ctx, "checkout completed", "order_id", created.ID, "total", created.Total)
	return created, nil
}
