package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/golshop/storefront/pkg/messaging"
	"github.com/golshop/storefront/pkg/messaging/events"
)

// OrderService defines the methods for managing orders.
type OrderService interface {
	// Create appends a new order built from a finalized cart snapshot.
	// The order status is always initialized to "processing".
	Create(ctx context.Context, draft OrderCreateDto) (*OrderDto, error)

	// FindByID retrieves a single order, enforcing that it belongs to the
	// requesting user. Returns ErrOrderNotFound or ErrAccessDenied.
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*OrderDto, error)

	// FindByUserID returns the user's order history, newest first.
	FindByUserID(ctx context.Context, userID string, offset, limit int32) ([]OrderDto, error)

	// FindAll returns all orders, newest first (admin surface).
	FindAll(ctx context.Context, offset, limit int32) ([]OrderDto, error)

	// UpdateStatus moves an order to a new lifecycle status (admin surface).
	// Returns ErrInvalidStatus for unknown statuses.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderDto, error)
}

// OrderItemDto is one frozen cart line inside an order.
type OrderItemDto struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"      validate:"required"`
	UnitPrice int64  `json:"unitPrice" validate:"min=0"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
	ImageURL  string `json:"imageUrl"`
}

// CustomerDto carries the checkout contact fields.
type CustomerDto struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Phone    string `json:"phone"    validate:"required,max=20"`
	Address  string `json:"address"  validate:"required,max=500"`
	City     string `json:"city"     validate:"required,max=100"`
	Postcode string `json:"postcode" validate:"max=20"`
}

// OrderCreateDto is the draft accepted at checkout.
type OrderCreateDto struct {
	UserID   string         `json:"-"`
	Items    []OrderItemDto `json:"items"    validate:"required,min=1,dive"`
	Customer CustomerDto    `json:"customer" validate:"required"`
}

// OrderDto represents the data transfer object for an order.
type OrderDto struct {
	ID        uuid.UUID      `json:"id"`
	UserID    string         `json:"userId,omitempty"`
	Items     []OrderItemDto `json:"items"`
	Total     int64          `json:"total"`
	Customer  CustomerDto    `json:"customer"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Service implements OrderService over a Store, publishing an order-created
// event after each successful append.
type Service struct {
	repository Store
	publisher  messaging.Publisher // nil disables event publishing
	logger     *slog.Logger
}

// NewService creates an order service. publisher may be nil.
func NewService(repo Store, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
		logger:     logger.With("component", "order"),
	}
}

// Create appends a new order document built from the draft. The computed
// total is derived from the item snapshots, never taken from the client.
func (s *Service) Create(ctx context.Context, draft OrderCreateDto) (*OrderDto, error) {
	if len(draft.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	now := time.Now().UTC()
	o := Order{
		ID:        uuid.New(),
		UserID:    draft.UserID,
		Items:     make([]Item, len(draft.Items)),
		Customer:  toCustomer(draft.Customer),
		Status:    StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, it := range draft.Items {
		o.Items[i] = Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
		o.Total += it.UnitPrice * int64(it.Quantity)
	}

	created, err := s.repository.Create(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishCreated(ctx, created)
	return toDto(created), nil
}

// FindByID retrieves an order and checks it belongs to the requesting user.
func (s *Service) FindByID(ctx context.Context, userID string, id uuid.UUID) (*OrderDto, error) {
	o, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order by ID %s: %w", id, err)
	}
	if o.UserID != userID {
		return nil, ErrAccessDenied
	}
	return toDto(o), nil
}

// FindByUserID returns the user's order history, newest first.
func (s *Service) FindByUserID(ctx context.Context, userID string, offset, limit int32) ([]OrderDto, error) {
	orders, err := s.repository.FindByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return toDtos(orders), nil
}

// FindAll returns all orders, newest first.
func (s *Service) FindAll(ctx context.Context, offset, limit int32) ([]OrderDto, error) {
	orders, err := s.repository.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return toDtos(orders), nil
}

// UpdateStatus moves an order to a new lifecycle status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*OrderDto, error) {
	st := Status(newStatus)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	updated, err := s.repository.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("failed to update status for order %s: %w", id, err)
	}
	return toDto(updated), nil
}

// publishCreated emits the order-created event. Publishing is best-effort:
// a failure is logged and does not fail the checkout.
func (s *Service) publishCreated(ctx context.Context, o *Order) {
	if s.publisher == nil {
		return
	}
	event := events.OrderCreatedEvent{
		OrderID:    o.ID,
		UserID:     o.UserID,
		TotalPrice: o.Total,
		ItemCount:  len(o.Items),
		CreatedAt:  o.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order created event", "order_id", o.ID, "error", err)
	}
}

func toCustomer(c CustomerDto) Customer {
	return Customer{
		FullName: c.FullName,
		Phone:    c.Phone,
		Address:  c.Address,
		City:     c.City,
		Postcode: c.Postcode,
	}
}

// toDto converts an order.Order to an OrderDto.
func toDto(o *Order) *OrderDto {
	items := make([]OrderItemDto, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemDto{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
	}
	return &OrderDto{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		Total:  o.Total,
		Customer: CustomerDto{
			FullName: o.Customer.FullName,
			Phone:    o.Customer.Phone,
			Address:  o.Customer.Address,
			City:     o.Customer.City,
			Postcode: o.Customer.Postcode,
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func toDtos(orders []Order) []OrderDto {
	dtos := make([]OrderDto, len(orders))
	for i := range orders {
		dtos[i] = *toDto(&orders[i])
	}
	return dtos
}
