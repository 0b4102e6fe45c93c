// Package cart implements the session-scoped shopping cart: a reducer-driven
// state container with durable, best-effort persistence behind a small Store
// capability.
package cart

// Product is the catalog snapshot captured when an item enters the cart.
// Identity is ID; the remaining fields are display data frozen at add time and
// never re-validated against the catalog afterwards.
type Product struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Price       int64  `json:"price" firestore:"price"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	ImageHint   string `json:"imageHint" firestore:"imageHint"`
}

// Item is a product snapshot plus a quantity. The reducer guarantees
// Quantity >= 1 for every item it emits; a quantity driven to zero or below
// removes the item instead of retaining a zero-quantity row.
type Item struct {
	Product
	Quantity int `json:"quantity" firestore:"quantity"`
}

// State is the full cart aggregate: an ordered sequence of items, unique by
// product ID. Insertion order is stable for display but carries no other
// meaning. The zero value is an empty cart.
type State struct {
	Items []Item
}

// TotalItems returns the sum of all item quantities.
func (s State) TotalItems() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity over all items.
func (s State) TotalPrice() int64 {
	var total int64
	for _, it := range s.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// Quantity returns the stored quantity for the given product ID, or 0 if the
// product is not in the cart.
func (s State) Quantity(productID string) int {
	for _, it := range s.Items {
		if it.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

// clone returns a deep copy of the item sequence so reducer outputs never
// alias the input state.
func (s State) clone() []Item {
	if len(s.Items) == 0 {
		return nil
	}
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return items
}
