package catalog

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store over a products collection, one document
// per product keyed by the product's uuid.
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

// FindAll returns products sorted per the order hint, with paging.
func (s *FirestoreStore) FindAll(ctx context.Context, order OrderHint, offset, limit int32) ([]Product, error) {
	q := s.col().Query
	switch order {
	case OrderPriceAsc:
		q = q.OrderBy("price", firestore.Asc)
	case OrderPriceDesc:
		q = q.OrderBy("price", firestore.Desc)
	case OrderName:
		q = q.OrderBy("name", firestore.Asc)
	default:
		q = q.OrderBy("createdAt", firestore.Desc)
	}

	snaps, err := q.Offset(int(offset)).Limit(int(limit)).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]Product, 0, len(snaps))
	for _, snap := range snaps {
		var p Product
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", snap.Ref.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *FirestoreStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	snap, err := s.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	var p Product
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	return &p, nil
}

// Create adds a new product record.
func (s *FirestoreStore) Create(ctx context.Context, p Product) (*Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.col().Doc(p.ID.String()).Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &p, nil
}

// Update overwrites an existing product's details.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *FirestoreStore) Update(ctx context.Context, p Product) (*Product, error) {
	existing, err := s.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if _, err := s.col().Doc(p.ID.String()).Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &p, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *FirestoreStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.col().Doc(id.String()).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return nil
}
