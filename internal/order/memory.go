package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore implements Store using in-memory slices. Test support.
type memoryStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]Order
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{orders: make(map[uuid.UUID]Order)}
}

func (s *memoryStore) Create(_ context.Context, o Order) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return &o, nil
}

func (s *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &o, nil
}

func (s *memoryStore) FindByUserID(_ context.Context, userID string, offset, limit int32) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(func(o Order) bool { return o.UserID == userID }, offset, limit), nil
}

func (s *memoryStore) FindAll(_ context.Context, offset, limit int32) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(func(Order) bool { return true }, offset, limit), nil
}

func (s *memoryStore) UpdateStatus(_ context.Context, id uuid.UUID, status Status) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	s.orders[id] = o
	return &o, nil
}

func (s *memoryStore) filtered(keep func(Order) bool, offset, limit int32) []Order {
	list := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if int(offset) >= len(list) {
		return []Order{}
	}
	list = list[offset:]
	if int(limit) < len(list) {
		list = list[:limit]
	}
	return list
}
