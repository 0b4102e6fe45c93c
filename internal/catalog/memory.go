package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore implements Store using an in-memory map. It backs tests and the
// seeded fallback listing served when the document store is unreachable.
type memoryStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{products: make(map[uuid.UUID]Product)}
}

// NewSeededStore creates an in-memory Store preloaded with the given products.
func NewSeededStore(products []Product) Store {
	m := &memoryStore{products: make(map[uuid.UUID]Product, len(products))}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (s *memoryStore) FindAll(_ context.Context, order OrderHint, offset, limit int32) ([]Product, error) {
	s.mu.RLock()
	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	s.mu.RUnlock()

	switch order {
	case OrderPriceAsc:
		sort.Slice(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case OrderPriceDesc:
		sort.Slice(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case OrderName:
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	default:
		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}

	if int(offset) >= len(list) {
		return []Product{}, nil
	}
	list = list[offset:]
	if int(limit) < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (s *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (s *memoryStore) Create(_ context.Context, p Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = p
	return &p, nil
}

func (s *memoryStore) Update(_ context.Context, p Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[p.ID]
	if !ok {
		return nil, ErrProductNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	s.products[p.ID] = p
	return &p, nil
}

func (s *memoryStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}
