package cart

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore persists one session's cart as a single document:
// {collection}/{sessionID} with fields items, updatedAt and expiresAt.
// Configure a document TTL policy on "expiresAt" to reap abandoned carts.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	sessionID  string
	ttl        time.Duration
}

func NewFirestoreStore(client *firestore.Client, collection, sessionID string, ttl time.Duration) *FirestoreStore {
	return &FirestoreStore{
		client:     client,
		collection: collection,
		sessionID:  sessionID,
		ttl:        ttl,
	}
}

type cartDoc struct {
	Items     []Item    `firestore:"items"`
	UpdatedAt time.Time `firestore:"updatedAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
}

// Load fetches the session's cart document. A missing document reports
// ok=false; a document that no longer matches the expected shape (schema
// drift, hand-edited data) hydrates as "no prior cart" instead of failing.
func (s *FirestoreStore) Load(ctx context.Context) ([]Item, bool, error) {
	snap, err := s.client.Collection(s.collection).Doc(s.sessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load cart %s: %w", s.sessionID, err)
	}

	var doc cartDoc
	if err := snap.DataTo(&doc); err != nil {
		// Malformed snapshot: treat as no prior cart, not a hard failure.
		return nil, false, nil
	}
	return doc.Items, true, nil
}

// Save overwrites the full cart document. Writing the whole snapshot keeps
// the persisted state exactly equal to the reducer output.
func (s *FirestoreStore) Save(ctx context.Context, items []Item) error {
	now := time.Now().UTC()
	doc := cartDoc{
		Items:     items,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if doc.Items == nil {
		doc.Items = []Item{}
	}
	if _, err := s.client.Collection(s.collection).Doc(s.sessionID).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", s.sessionID, err)
	}
	return nil
}
