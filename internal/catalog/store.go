package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Store is an interface for product storage operations.
// It abstracts the underlying document store, allowing for different
// implementations (in-memory, Firestore).
type Store interface {
	// FindAll returns products sorted per the order hint, with paging.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context, order OrderHint, offset, limit int32) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// Create adds a new product record.
	Create(ctx context.Context, p Product) (*Product, error)

	// Update overwrites an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, p Product) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
