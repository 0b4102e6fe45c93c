package cart

// Action is the discriminated union of cart state transitions.
type Action interface {
	isAction()
}

// AddItem inserts a new item or increments the quantity of an existing one.
// The product snapshot of an existing item is kept as-is; only its quantity
// changes.
type AddItem struct {
	Product  Product
	Quantity int
}

// RemoveItem deletes the item with the given product ID. Absent IDs are a
// benign no-op.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets (not increments) the quantity of an existing item. The
// effective quantity is clamped to max(0, Quantity); zero removes the item.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart unconditionally.
type Clear struct{}

// Load replaces the whole item sequence, used for hydration from the store.
// Items that violate the invariants (empty ID, quantity < 1, duplicate ID)
// are dropped rather than failing the load.
type Load struct {
	Items []Item
}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}
func (Load) isAction()           {}

// Apply is the pure cart reducer. Every output state satisfies the cart
// invariants: no two items share an ID and every item has quantity >= 1.
// Unknown actions leave the state unchanged.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case AddItem:
		return applyAdd(s, act)
	case RemoveItem:
		return applyRemove(s, act.ProductID)
	case UpdateQuantity:
		return applyUpdate(s, act.ProductID, act.Quantity)
	case Clear:
		return State{}
	case Load:
		return applyLoad(act.Items)
	default:
		return s
	}
}

func applyAdd(s State, act AddItem) State {
	if act.Product.ID == "" {
		return s
	}
	items := s.clone()
	for i := range items {
		if items[i].ID == act.Product.ID {
			next := items[i].Quantity + act.Quantity
			if next < 1 {
				return State{Items: append(items[:i], items[i+1:]...)}
			}
			items[i].Quantity = next
			return State{Items: items}
		}
	}
	if act.Quantity < 1 {
		return s
	}
	return State{Items: append(items, Item{Product: act.Product, Quantity: act.Quantity})}
}

func applyRemove(s State, productID string) State {
	for i, it := range s.Items {
		if it.ID == productID {
			items := s.clone()
			return State{Items: append(items[:i], items[i+1:]...)}
		}
	}
	return s
}

func applyUpdate(s State, productID string, quantity int) State {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		return applyRemove(s, productID)
	}
	for i := range s.Items {
		if s.Items[i].ID == productID {
			items := s.clone()
			items[i].Quantity = quantity
			return State{Items: items}
		}
	}
	return s
}

func applyLoad(items []Item) State {
	if len(items) == 0 {
		return State{}
	}
	seen := make(map[string]struct{}, len(items))
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID == "" || it.Quantity < 1 {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		kept = append(kept, it)
	}
	if len(kept) == 0 {
		return State{}
	}
	return State{Items: kept}
}
