package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/golshop/storefront/pkg/messaging"
)

// OrderCreatedEvent is emitted after an order document has been appended to
// the order store. UserID is empty for guest checkouts.
type OrderCreatedEvent struct {
	OrderID    uuid.UUID `json:"order_id"`
	UserID     string    `json:"user_id,omitempty"`
	TotalPrice int64     `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (o OrderCreatedEvent) Subject() string {
	return messaging.OrdersCreatedSubject
}

func (o OrderCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}
