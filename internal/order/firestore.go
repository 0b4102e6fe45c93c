package order

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store over an orders collection, one document per
// order keyed by the order's uuid.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	return &FirestoreStore{client: client, collection: collection}
}

func (s *FirestoreStore) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

// Create appends a new order document.
func (s *FirestoreStore) Create(ctx context.Context, o Order) (*Order, error) {
	if _, err := s.col().Doc(o.ID.String()).Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &o, nil
}

// FindByID retrieves an order by its unique identifier.
// Returns ErrOrderNotFound if no order exists with the given ID.
func (s *FirestoreStore) FindByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	snap, err := s.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	var o Order
	if err := snap.DataTo(&o); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return &o, nil
}

// FindByUserID returns the user's orders, newest first.
func (s *FirestoreStore) FindByUserID(ctx context.Context, userID string, offset, limit int32) ([]Order, error) {
	q := s.col().Where("userId", "==", userID).OrderBy("createdAt", firestore.Desc)
	return s.list(ctx, q.Offset(int(offset)).Limit(int(limit)))
}

// FindAll returns all orders, newest first.
func (s *FirestoreStore) FindAll(ctx context.Context, offset, limit int32) ([]Order, error) {
	q := s.col().OrderBy("createdAt", firestore.Desc)
	return s.list(ctx, q.Offset(int(offset)).Limit(int(limit)))
}

// UpdateStatus moves an order to a new lifecycle status.
// Returns ErrOrderNotFound if no order exists with the given ID.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus Status) (*Order, error) {
	ref := s.col().Doc(id.String())
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return s.FindByID(ctx, id)
}

func (s *FirestoreStore) list(ctx context.Context, q firestore.Query) ([]Order, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := make([]Order, 0, len(snaps))
	for _, snap := range snaps {
		var o Order
		if err := snap.DataTo(&o); err != nil {
			return nil, fmt.Errorf("failed to decode order %s: %w", snap.Ref.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
