package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StoreFactory builds the durable store backing one session's cart.
type StoreFactory func(sessionID string) Store

type managedEngine struct {
	engine   *Engine
	lastSeen time.Time
}

// Manager hands out the cart engine singleton for each session. The engine is
// created and hydrated on first access and then shared by reference between
// all handlers serving the same session.
type Manager struct {
	mu       sync.Mutex
	engines  map[string]*managedEngine
	newStore StoreFactory
	logger   *slog.Logger
}

func NewManager(newStore StoreFactory, logger *slog.Logger) *Manager {
	return &Manager{
		engines:  make(map[string]*managedEngine),
		newStore: newStore,
		logger:   logger,
	}
}

// Engine returns the engine owning the session's cart, creating and hydrating
// it on first use. It does not return until hydration has completed, so a
// caller can never mutate state that a still-loading snapshot would overwrite.
func (m *Manager) Engine(ctx context.Context, sessionID string) *Engine {
	m.mu.Lock()
	me, ok := m.engines[sessionID]
	if !ok {
		me = &managedEngine{engine: NewEngine(m.newStore(sessionID), m.logger)}
		m.engines[sessionID] = me
	}
	me.lastSeen = time.Now()
	m.mu.Unlock()

	// Hydration happens outside the manager lock; it runs once per engine and
	// concurrent callers block until the snapshot is applied.
	me.engine.Hydrate(ctx)
	return me.engine
}

// Evict drops the cached engine for a session. Subsequent access re-hydrates
// from the durable store.
func (m *Manager) Evict(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, sessionID)
}

// EvictIdle drops every engine not handed out since the cutoff. The durable
// snapshots are untouched; an evicted session re-hydrates on next access.
func (m *Manager) EvictIdle(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for sessionID, me := range m.engines {
		if me.lastSeen.Before(cutoff) {
			delete(m.engines, sessionID)
			evicted++
		}
	}
	return evicted
}

// Sweep evicts idle engines every interval until the context is cancelled.
// maxIdle should track the cart document TTL so the in-process cache never
// outlives the durable snapshot it fronts.
func (m *Manager) Sweep(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.EvictIdle(now.Add(-maxIdle)); n > 0 {
				m.logger.Debug("evicted idle cart engines", "count", n)
			}
		}
	}
}
