// Package catalog provides product listing and the admin product CRUD surface.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record. Price is stored in minor currency units
// (rials); locale formatting happens only at render time.
type Product struct {
	ID          uuid.UUID `firestore:"id"`
	Name        string    `firestore:"name"`
	Price       int64     `firestore:"price"`
	Description string    `firestore:"description"`
	ImageURL    string    `firestore:"imageUrl"`
	ImageHint   string    `firestore:"imageHint"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// OrderHint selects the listing sort order. Unknown hints fall back to newest.
type OrderHint string

const (
	OrderNewest    OrderHint = "newest"
	OrderPriceAsc  OrderHint = "price_asc"
	OrderPriceDesc OrderHint = "price_desc"
	OrderName      OrderHint = "name"
)
