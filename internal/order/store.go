package order

import (
	"context"

	"github.com/google/uuid"
)

// Store is an interface for order storage operations over the append-only
// order collection.
type Store interface {
	// Create appends a new order document.
	Create(ctx context.Context, o Order) (*Order, error)

	// FindByID retrieves a single order by its unique identifier.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUserID returns the user's orders, newest first.
	FindByUserID(ctx context.Context, userID string, offset, limit int32) ([]Order, error)

	// FindAll returns all orders, newest first (admin surface).
	FindAll(ctx context.Context, offset, limit int32) ([]Order, error)

	// UpdateStatus moves an order to a new lifecycle status.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Order, error)
}
