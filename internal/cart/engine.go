package cart

import (
	"context"
	"log/slog"
	"sync"
)

// Engine owns one session's cart state. Each mutating operation is a single
// atomic transition: the reducer runs and the resulting snapshot is persisted
// under the same lock, so the persisted snapshot after operation N reflects
// exactly operations 1..N regardless of store latency. Persistence is
// best-effort: a failed save is logged and never rolls back the in-memory
// transition.
type Engine struct {
	mu      sync.Mutex
	hydrate sync.Once
	state   State
	store   Store
	logger  *slog.Logger
}

// NewEngine creates an engine over the given store. One engine per
// session or test; consumers share the instance by reference.
func NewEngine(store Store, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger.With("component", "cart"),
	}
}

// Hydrate loads the prior snapshot, if any, replacing the current state. It
// runs the load at most once per engine; concurrent callers block until the
// first hydration has been applied, so a late-arriving snapshot can never
// erase a mutation dispatched in the meantime. A missing or unreadable
// snapshot hydrates as an empty cart.
func (e *Engine) Hydrate(ctx context.Context) {
	e.hydrate.Do(func() {
		items, ok, err := e.store.Load(ctx)
		if err != nil {
			e.logger.WarnContext(ctx, "cart hydration failed, starting empty", "error", err)
			return
		}
		if !ok {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		e.state = Apply(e.state, Load{Items: items})
	})
}

// AddItem inserts the product or increments its quantity by the given amount.
func (e *Engine) AddItem(ctx context.Context, p Product, quantity int) {
	e.dispatch(ctx, AddItem{Product: p, Quantity: quantity})
}

// RemoveItem deletes the item with the given product ID; absent IDs are a no-op.
func (e *Engine) RemoveItem(ctx context.Context, productID string) {
	e.dispatch(ctx, RemoveItem{ProductID: productID})
}

// UpdateItemQuantity sets the quantity for the given product ID, clamped to
// max(0, quantity); a clamped quantity of zero removes the item.
func (e *Engine) UpdateItemQuantity(ctx context.Context, productID string, quantity int) {
	e.dispatch(ctx, UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// ClearCart empties the cart unconditionally.
func (e *Engine) ClearCart(ctx context.Context) {
	e.dispatch(ctx, Clear{})
}

// Items returns a copy of the current item sequence in insertion order.
func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// ItemQuantity returns the stored quantity for the product, or 0 if absent.
// Pure query: no state transition, no persistence write.
func (e *Engine) ItemQuantity(productID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Quantity(productID)
}

// TotalItems returns the sum of all quantities, recomputed from current state.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TotalItems()
}

// TotalPrice returns the sum of price*quantity, recomputed from current state.
func (e *Engine) TotalPrice() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TotalPrice()
}

// Snapshot returns the current state copy together with its derived totals.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{Items: e.state.clone()}
}

// dispatch applies one action and persists the result while holding the
// lock, which serializes saves in call order.
func (e *Engine) dispatch(ctx context.Context, a Action) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Apply(e.state, a)
	if err := e.store.Save(ctx, e.state.Items); err != nil {
		e.logger.WarnContext(ctx, "cart persistence failed, in-memory state kept", "error", err)
	}
}
