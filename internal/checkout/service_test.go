package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golshop/storefront/internal/cart"
	"github.com/golshop/storefront/internal/order"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockOrderService is a mock implementation of the order.OrderService interface
type mockOrderService struct {
	created *order.OrderCreateDto
	err     error
}

func (m *mockOrderService) Create(_ context.Context, draft order.OrderCreateDto) (*order.OrderDto, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = &draft
	var total int64
	for _, it := range draft.Items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return &order.OrderDto{ID: uuid.New(), Total: total, Status: string(order.StatusProcessing)}, nil
}

func (m *mockOrderService) FindByID(context.Context, string, uuid.UUID) (*order.OrderDto, error) {
	return nil, order.ErrOrderNotFound
}

func (m *mockOrderService) FindByUserID(context.Context, string, int32, int32) ([]order.OrderDto, error) {
	return nil, nil
}

func (m *mockOrderService) FindAll(context.Context, int32, int32) ([]order.OrderDto, error) {
	return nil, nil
}

func (m *mockOrderService) UpdateStatus(context.Context, uuid.UUID, string) (*order.OrderDto, error) {
	return nil, order.ErrOrderNotFound
}

func customer() order.CustomerDto {
	return order.CustomerDto{
		FullName: "سارا موسوی",
		Phone:    "09351234567",
		Address:  "اصفهان، خیابان چهارباغ",
		City:     "اصفهان",
	}
}

func filledEngine(t *testing.T) *cart.Engine {
	t.Helper()
	e := cart.NewEngine(cart.NewMemoryStore(), testLogger())
	e.AddItem(context.Background(), cart.Product{ID: "p1", Name: "شال نخی", Price: 4_200_000, ImageURL: "https://img.example/p1"}, 2)
	e.AddItem(context.Background(), cart.Product{ID: "p2", Name: "کیف دوشی", Price: 18_900_000}, 1)
	return e
}

func Test_Checkout_SuccessClearsCart(t *testing.T) {
	ctx := context.Background()
	orders := &mockOrderService{}
	svc := NewService(orders, testLogger())
	engine := filledEngine(t)

	created, err := svc.Checkout(ctx, engine, "uid-1", customer())
	require.NoError(t, err)

	assert.Equal(t, int64(2*4_200_000+18_900_000), created.Total)
	assert.Empty(t, engine.Items())

	// The draft carries the frozen snapshot, not live catalog data.
	require.NotNil(t, orders.created)
	require.Len(t, orders.created.Items, 2)
	assert.Equal(t, "p1", orders.created.Items[0].ProductID)
	assert.Equal(t, int64(4_200_000), orders.created.Items[0].UnitPrice)
	assert.Equal(t, "uid-1", orders.created.UserID)
}

func Test_Checkout_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&mockOrderService{err: errors.New("order store unavailable")}, testLogger())
	engine := filledEngine(t)

	_, err := svc.Checkout(ctx, engine, "uid-1", customer())
	require.Error(t, err)

	// Retry is possible without data loss.
	assert.Equal(t, 3, engine.TotalItems())
	assert.Equal(t, int64(2*4_200_000+18_900_000), engine.TotalPrice())
}

func Test_Checkout_EmptyCartRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&mockOrderService{}, testLogger())
	engine := cart.NewEngine(cart.NewMemoryStore(), testLogger())

	_, err := svc.Checkout(ctx, engine, "", customer())
	assert.ErrorIs(t, err, ErrEmptyCart)
}
