// Package order provides the durable order collection and its business logic.
package order

import (
	"time"

	"github.com/google/uuid"
)

// Status is the order lifecycle state. New orders always start as
// StatusProcessing.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a cart line frozen into the order document at checkout.
type Item struct {
	ProductID string `firestore:"productId"`
	Name      string `firestore:"name"`
	UnitPrice int64  `firestore:"unitPrice"`
	Quantity  int    `firestore:"quantity"`
	ImageURL  string `firestore:"imageUrl"`
}

// Customer holds the contact fields collected on the checkout page.
type Customer struct {
	FullName string `firestore:"fullName"`
	Phone    string `firestore:"phone"`
	Address  string `firestore:"address"`
	City     string `firestore:"city"`
	Postcode string `firestore:"postcode"`
}

// Order is one document in the append-only order collection. UserID is the
// identity provider uid, empty for guest checkouts.
type Order struct {
	ID        uuid.UUID `firestore:"id"`
	UserID    string    `firestore:"userId"`
	Items     []Item    `firestore:"items"`
	Total     int64     `firestore:"total"`
	Customer  Customer  `firestore:"customer"`
	Status    Status    `firestore:"status"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}
