package order

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golshop/storefront/pkg/messaging"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockPublisher records published events and can simulate broker failure.
type mockPublisher struct {
	events []messaging.Event
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func draft(userID string) OrderCreateDto {
	return OrderCreateDto{
		UserID: userID,
		Items: []OrderItemDto{
			{ProductID: "p1", Name: "شال نخی", UnitPrice: 4_200_000, Quantity: 2, ImageURL: "https://img.example/p1"},
			{ProductID: "p2", Name: "کیف دوشی", UnitPrice: 18_900_000, Quantity: 1},
		},
		Customer: CustomerDto{
			FullName: "مریم احمدی",
			Phone:    "09121234567",
			Address:  "تهران، خیابان ولیعصر",
			City:     "تهران",
		},
	}
}

func Test_OrderService_Create(t *testing.T) {
	ctx := context.Background()
	pub := &mockPublisher{}
	svc := NewService(NewMemoryStore(), pub, testLogger())

	created, err := svc.Create(ctx, draft("uid-1"))
	require.NoError(t, err)

	assert.Equal(t, string(StatusProcessing), created.Status)
	assert.Equal(t, int64(2*4_200_000+18_900_000), created.Total)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, pub.events, 1)

	t.Run("empty draft is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, OrderCreateDto{UserID: "uid-1"})
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("publisher failure does not fail the checkout", func(t *testing.T) {
		failing := NewService(NewMemoryStore(), &mockPublisher{err: errors.New("broker down")}, testLogger())
		created, err := failing.Create(ctx, draft("uid-1"))
		require.NoError(t, err)
		assert.Equal(t, string(StatusProcessing), created.Status)
	})
}

func Test_OrderService_FindByID_AccessCheck(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil, testLogger())

	created, err := svc.Create(ctx, draft("uid-1"))
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.FindByID(ctx, "uid-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("other user is denied", func(t *testing.T) {
		_, err := svc.FindByID(ctx, "uid-2", created.ID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.FindByID(ctx, "uid-1", uuid.New())
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func Test_OrderService_FindByUserID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil, testLogger())

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, draft("uid-1"))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, draft("uid-2"))
	require.NoError(t, err)

	mine, err := svc.FindByUserID(ctx, "uid-1", 0, 10)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	all, err := svc.FindAll(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func Test_OrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil, testLogger())

	created, err := svc.Create(ctx, draft("uid-1"))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Status)

	_, err = svc.UpdateStatus(ctx, created.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
