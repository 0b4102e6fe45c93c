package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Service defines the catalog operations consumed by the storefront pages
// and the admin panel.
type Service interface {
	// FindAll returns the product listing sorted per the order hint. When the
	// document store read fails and a fallback store is configured, the
	// seeded listing is served instead of an error.
	FindAll(ctx context.Context, order OrderHint, offset, limit int32) ([]ProductDto, error)

	// FindByID retrieves a single product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// Create adds a new product (admin surface).
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update overwrites an existing product's details (admin surface).
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, product ProductCreateDto) (*ProductDto, error)

	// DeleteByID removes a product (admin surface).
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ProductCreateDto represents the data transfer object for creating or
// replacing a product.
type ProductCreateDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Price       int64  `json:"price"       validate:"required,min=0"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"imageUrl"    validate:"omitempty,url"`
	ImageHint   string `json:"imageHint"   validate:"max=100"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageHint   string `json:"imageHint"`
}

// CatalogService implements Service over a primary store with an optional
// seeded fallback for degraded reads.
type CatalogService struct {
	store    Store
	fallback Store // nil disables the degraded listing
	logger   *slog.Logger
}

// NewService creates a catalog service. fallback may be nil.
func NewService(store Store, fallback Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:    store,
		fallback: fallback,
		logger:   logger.With("component", "catalog"),
	}
}

// FindAll retrieves the listing, degrading to the fallback store when the
// primary read fails.
func (s *CatalogService) FindAll(ctx context.Context, order OrderHint, offset, limit int32) ([]ProductDto, error) {
	products, err := s.store.FindAll(ctx, order, offset, limit)
	if err != nil {
		if s.fallback == nil {
			return nil, fmt.Errorf("failed to fetch products: %w", err)
		}
		s.logger.WarnContext(ctx, "catalog read failed, serving fallback listing", "error", err)
		products, err = s.fallback.FindAll(ctx, order, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch fallback products: %w", err)
		}
	}
	dtos := make([]ProductDto, len(products))
	for i := range products {
		dtos[i] = *toDto(&products[i])
	}
	return dtos, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *CatalogService) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toDto(product), nil
}

// Create adds a new product and returns it as a ProductDto.
func (s *CatalogService) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.store.Create(ctx, Product{
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		ImageHint:   product.ImageHint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(p), nil
}

// Update overwrites an existing product's details.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, product ProductCreateDto) (*ProductDto, error) {
	updated, err := s.store.Update(ctx, Product{
		ID:          id,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		ImageHint:   product.ImageHint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *CatalogService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteByID(ctx, id)
}

// toDto converts a catalog.Product to a ProductDto.
func toDto(product *Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID.String(),
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		ImageHint:   product.ImageHint,
	}
}
