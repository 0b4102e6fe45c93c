package cart

import (
	"context"
	"sync"
)

// Store is the durable persistence capability behind one cart. Load reports
// ok=false when no prior snapshot exists; an unreadable snapshot must hydrate
// as "no prior cart" rather than failing. Save replaces the whole snapshot.
type Store interface {
	Load(ctx context.Context) ([]Item, bool, error)
	Save(ctx context.Context, items []Item) error
}

// MemoryStore implements Store with an in-process snapshot. It backs tests
// and sessions running without a document database.
type MemoryStore struct {
	mu    sync.Mutex
	items []Item
	saved bool

	// FailSave, when set, makes Save return that error. Used by tests to
	// exercise the best-effort persistence contract.
	FailSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) ([]Item, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, false, nil
	}
	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items, true, nil
}

func (m *MemoryStore) Save(_ context.Context, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.items = make([]Item, len(items))
	copy(m.items, items)
	m.saved = true
	return nil
}
