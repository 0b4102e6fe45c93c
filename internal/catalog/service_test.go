package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore is a mock implementation of the Store interface
type mockStore struct {
	products []Product
	product  Product
	error    error
}

func (m *mockStore) FindAll(_ context.Context, _ OrderHint, _, _ int32) ([]Product, error) {
	return m.products, m.error
}

func (m *mockStore) FindByID(_ context.Context, _ uuid.UUID) (*Product, error) {
	return &m.product, m.error
}

func (m *mockStore) Create(_ context.Context, _ Product) (*Product, error) {
	return &m.product, m.error
}

func (m *mockStore) Update(_ context.Context, _ Product) (*Product, error) {
	return &m.product, m.error
}

func (m *mockStore) DeleteByID(_ context.Context, _ uuid.UUID) error {
	return m.error
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_CatalogService_FindAll(t *testing.T) {
	mockID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	errStore := errors.New("firestore unavailable")

	testCases := []struct {
		name        string
		store       Store
		fallback    Store
		wantNames   []string
		expectError bool
	}{
		{
			name:      "Success - primary listing served",
			store:     &mockStore{products: []Product{{ID: mockID, Name: "شال نخی"}}},
			fallback:  NewSeededStore(MockListing()),
			wantNames: []string{"شال نخی"},
		},
		{
			name:      "Degraded - primary failure falls back to seeded listing",
			store:     &mockStore{error: errStore},
			fallback:  NewSeededStore([]Product{{ID: mockID, Name: "کیف دوشی"}}),
			wantNames: []string{"کیف دوشی"},
		},
		{
			name:        "Error - primary failure with no fallback configured",
			store:       &mockStore{error: errStore},
			fallback:    nil,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(tc.store, tc.fallback, testLogger())
			got, err := svc.FindAll(context.Background(), OrderNewest, 0, 20)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			names := make([]string, len(got))
			for i, p := range got {
				names[i] = p.Name
			}
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func Test_CatalogService_FindByID(t *testing.T) {
	mockID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	t.Run("Success - product found", func(t *testing.T) {
		svc := NewService(&mockStore{product: Product{ID: mockID, Name: "مانتو کتان", Price: 12_500_000}}, nil, testLogger())
		got, err := svc.FindByID(context.Background(), mockID)
		require.NoError(t, err)
		assert.Equal(t, mockID.String(), got.ID)
		assert.Equal(t, int64(12_500_000), got.Price)
	})

	t.Run("Error - product not found", func(t *testing.T) {
		svc := NewService(&mockStore{error: ErrProductNotFound}, nil, testLogger())
		_, err := svc.FindByID(context.Background(), mockID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func Test_MemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created, err := store.Create(ctx, Product{Name: "روسری ابریشم", Price: 9_600_000})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "روسری ابریشم", found.Name)

	created.Price = 10_000_000
	updated, err := store.Update(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), updated.Price)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, store.DeleteByID(ctx, created.ID))
	_, err = store.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, store.DeleteByID(ctx, created.ID), ErrProductNotFound)
}

func Test_MemoryStore_FindAllOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewSeededStore(MockListing())

	byPrice, err := store.FindAll(ctx, OrderPriceAsc, 0, 100)
	require.NoError(t, err)
	require.NotEmpty(t, byPrice)
	for i := 1; i < len(byPrice); i++ {
		assert.LessOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	paged, err := store.FindAll(ctx, OrderPriceAsc, 2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 2)
	assert.Equal(t, byPrice[2].ID, paged[0].ID)

	empty, err := store.FindAll(ctx, OrderNewest, 1000, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
